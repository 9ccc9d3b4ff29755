package alerts

import (
	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/server/internal/config"
)

// evalCondition evaluates a rule condition string against a HealthRecord.
//
// Supported expressions (field operator value):
//
//	health_score < 60
//	bmi >= 30
//	heart_rate > 100
//	blood_pressure > 120
//	sugar > 140
//	temperature_c > 37.5
//	pulse < 60
//	age >= 65
//	remark == Critical - Consult Doctor
//	gender == Female
//
// The value may contain spaces. Returns (fires bool, triggering value float64).
// Returns (false, 0) if the expression does not parse; config.Load rejects
// such rules up front.
func evalCondition(cond string, rec types.HealthRecord) (bool, float64) {
	c, err := config.ParseCondition(cond)
	if err != nil {
		return false, 0
	}

	if c.IsText() {
		v := rec.Remark
		if c.Field == "gender" {
			v = rec.Gender
		}
		if c.Op == "!=" {
			return v != c.Value, 0
		}
		return v == c.Value, 0
	}

	v, ok := numericField(c.Field, rec)
	if !ok {
		return false, 0
	}
	return compareFloat(v, c.Op, c.Threshold), v
}

// numericField maps a field name to its value in the record.
func numericField(field string, rec types.HealthRecord) (float64, bool) {
	switch field {
	case "health_score":
		return rec.HealthScore, true
	case "bmi":
		return rec.BMI, true
	case "heart_rate":
		return float64(rec.HeartRate), true
	case "blood_pressure":
		return float64(rec.BloodPressure), true
	case "sugar":
		return float64(rec.Sugar), true
	case "temperature_c":
		return rec.TemperatureC, true
	case "pulse":
		return float64(rec.Pulse), true
	case "age":
		return float64(rec.Age), true
	default:
		return 0, false
	}
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	case "!=":
		return v != threshold
	default:
		return false
	}
}
