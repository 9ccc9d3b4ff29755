package vitals

import (
	"math"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
)

// Timestamp layouts for HealthRecord.Date and HealthRecord.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// NewRecord combines a reading and its assessment into a HealthRecord
// stamped at ts. BMI and health score are rounded to two decimals here,
// after the score was computed from the unrounded values. The ID is left
// for the caller.
func NewRecord(r types.Reading, a types.Assessment, ts time.Time) types.HealthRecord {
	return types.HealthRecord{
		Date:          ts.Format(DateLayout),
		Time:          ts.Format(TimeLayout),
		Name:          r.Name,
		Age:           r.Age,
		Gender:        r.Gender,
		WeightKg:      r.WeightKg,
		HeightCm:      r.HeightCm,
		BMI:           Round2(a.BMI),
		HeartRate:     r.HeartRate,
		BloodPressure: r.BloodPressure,
		Sugar:         r.Sugar,
		TemperatureC:  r.TemperatureC,
		Pulse:         r.Pulse,
		HealthScore:   Round2(a.Score),
		Remark:        a.Remark,
	}
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
