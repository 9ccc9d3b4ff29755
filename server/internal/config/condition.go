package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition is a parsed alert rule condition of the form "field op value".
type Condition struct {
	Field string
	Op    string
	// Value is the raw right-hand side; it may contain spaces.
	Value string
	// Threshold is Value parsed as a number for numeric fields.
	Threshold float64
}

// NumericFields lists the record fields a condition can compare numerically.
var NumericFields = []string{
	"health_score", "bmi", "heart_rate", "blood_pressure",
	"sugar", "temperature_c", "pulse", "age",
}

// TextFields lists the record fields a condition can match as text.
var TextFields = []string{"remark", "gender"}

var numericOps = map[string]bool{">": true, ">=": true, "<": true, "<=": true, "==": true, "!=": true}

var textOps = map[string]bool{"==": true, "!=": true}

// IsText reports whether c compares a text field.
func (c Condition) IsText() bool { return contains(TextFields, c.Field) }

// ParseCondition parses and checks a rule condition. Text fields accept
// == and !=; numeric fields accept all comparison operators and need a
// numeric threshold.
func ParseCondition(cond string) (Condition, error) {
	parts := strings.Fields(cond)
	if len(parts) < 3 {
		return Condition{}, fmt.Errorf("condition %q must be \"field op value\"", cond)
	}
	c := Condition{Field: parts[0], Op: parts[1], Value: strings.Join(parts[2:], " ")}

	switch {
	case contains(TextFields, c.Field):
		if !textOps[c.Op] {
			return Condition{}, fmt.Errorf("condition %q: operator %q not supported for %s: want == or !=", cond, c.Op, c.Field)
		}
	case contains(NumericFields, c.Field):
		if !numericOps[c.Op] {
			return Condition{}, fmt.Errorf("condition %q: operator %q unknown", cond, c.Op)
		}
		v, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return Condition{}, fmt.Errorf("condition %q: threshold %q is not a number", cond, c.Value)
		}
		c.Threshold = v
	default:
		return Condition{}, fmt.Errorf("condition %q: unknown field %q: want one of %s",
			cond, c.Field, strings.Join(append(append([]string{}, NumericFields...), TextFields...), ", "))
	}
	return c, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
