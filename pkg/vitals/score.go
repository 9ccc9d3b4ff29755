package vitals

import (
	"errors"

	"github.com/healthtech/healthtech/pkg/types"
)

// Metric names in display order.
const (
	MetricBMI           = "BMI"
	MetricHeartRate     = "Heart Rate"
	MetricBloodPressure = "Blood Pressure"
	MetricSugar         = "Sugar"
	MetricTemperature   = "Temperature"
	MetricPulse         = "Pulse"
)

// Status labels.
const (
	StatusNormal      = "Normal"
	StatusAbnormal    = "Abnormal"
	StatusUnderweight = "Underweight"
	StatusOverweight  = "Overweight"
	StatusObese       = "Obese"
	StatusFever       = "High (Possible Fever)"
)

// Per-metric scores.
const (
	ScoreGood = 100
	ScoreFair = 70
	ScorePoor = 50
)

// Remarks derived from the aggregate score.
const (
	RemarkExcellent = "Excellent Health"
	RemarkGood      = "Good Health"
	RemarkAttention = "Needs Attention"
	RemarkCritical  = "Critical - Consult Doctor"
)

// Thresholds that map an aggregate score to a remark.
const (
	ThresholdExcellent = 90.0
	ThresholdGood      = 75.0
	ThresholdAttention = 60.0
)

// ErrInvalidHeight is returned when a height would make BMI undefined.
var ErrInvalidHeight = errors.New("height must be positive")

// BMI returns weightKg / (heightCm/100)².
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

// BMIStatus classifies a body-mass index.
//
// Values in [24.9, 25) match neither Normal nor Overweight and fall through
// to Obese. Likewise [29.9, 30) is Obese.
func BMIStatus(bmi float64) types.MetricResult {
	switch {
	case bmi < 18.5:
		return result(MetricBMI, StatusUnderweight, ScoreFair)
	case bmi >= 18.5 && bmi < 24.9:
		return result(MetricBMI, StatusNormal, ScoreGood)
	case bmi >= 25 && bmi < 29.9:
		return result(MetricBMI, StatusOverweight, ScoreFair)
	default:
		return result(MetricBMI, StatusObese, ScorePoor)
	}
}

// HeartRate classifies a heart rate in bpm. 60–100 inclusive is normal.
func HeartRate(bpm int) types.MetricResult {
	return inRange(MetricHeartRate, bpm, 60, 100)
}

// BloodPressure classifies a blood pressure reading. 80–120 inclusive is normal.
func BloodPressure(bp int) types.MetricResult {
	return inRange(MetricBloodPressure, bp, 80, 120)
}

// Sugar classifies a blood sugar level in mg/dL. 70–140 inclusive is normal.
func Sugar(mgdl int) types.MetricResult {
	return inRange(MetricSugar, mgdl, 70, 140)
}

// Temperature classifies a body temperature in °C. Anything above 37.5 is a
// possible fever; there is no lower band.
func Temperature(c float64) types.MetricResult {
	if c <= 37.5 {
		return result(MetricTemperature, StatusNormal, ScoreGood)
	}
	return result(MetricTemperature, StatusFever, ScorePoor)
}

// Pulse classifies a pulse rate. 60–100 inclusive is normal.
func Pulse(p int) types.MetricResult {
	return inRange(MetricPulse, p, 60, 100)
}

// Aggregate returns the unweighted mean of the metric scores, or 0 when
// there are none.
func Aggregate(metrics []types.MetricResult) float64 {
	if len(metrics) == 0 {
		return 0
	}
	var sum int
	for _, m := range metrics {
		sum += m.Score
	}
	return float64(sum) / float64(len(metrics))
}

// Remark maps an aggregate score to its remark. First match wins.
func Remark(score float64) string {
	switch {
	case score >= ThresholdExcellent:
		return RemarkExcellent
	case score >= ThresholdGood:
		return RemarkGood
	case score >= ThresholdAttention:
		return RemarkAttention
	default:
		return RemarkCritical
	}
}

// RemarkIcon returns the display icon for a remark. Icons are decoration
// for the shells and are never stored in a record.
func RemarkIcon(remark string) string {
	switch remark {
	case RemarkExcellent:
		return "🌟"
	case RemarkGood:
		return "👍"
	case RemarkAttention:
		return "⚠️"
	case RemarkCritical:
		return "🚨"
	default:
		return ""
	}
}

// Assess scores every metric of r and derives the aggregate and remark.
// It fails only when r.HeightCm is not positive.
func Assess(r types.Reading) (types.Assessment, error) {
	bmi, err := BMI(r.WeightKg, r.HeightCm)
	if err != nil {
		return types.Assessment{}, err
	}

	metrics := []types.MetricResult{
		BMIStatus(bmi),
		HeartRate(r.HeartRate),
		BloodPressure(r.BloodPressure),
		Sugar(r.Sugar),
		Temperature(r.TemperatureC),
		Pulse(r.Pulse),
	}
	score := Aggregate(metrics)

	return types.Assessment{
		Metrics: metrics,
		BMI:     bmi,
		Score:   score,
		Remark:  Remark(score),
	}, nil
}

// inRange scores v as Normal when lo ≤ v ≤ hi and Abnormal otherwise.
func inRange(metric string, v, lo, hi int) types.MetricResult {
	if v >= lo && v <= hi {
		return result(metric, StatusNormal, ScoreGood)
	}
	return result(metric, StatusAbnormal, ScorePoor)
}

func result(metric, status string, score int) types.MetricResult {
	return types.MetricResult{Metric: metric, Status: status, Score: score}
}
