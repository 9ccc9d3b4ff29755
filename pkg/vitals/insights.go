package vitals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/healthtech/healthtech/pkg/types"
)

// Insights returns the human-readable result lines shown after a submission:
// one line per metric in display order, then the final score line.
func Insights(r types.Reading, a types.Assessment) []string {
	status := make(map[string]string, len(a.Metrics))
	for _, m := range a.Metrics {
		status[m.Metric] = m.Status
	}

	return []string{
		fmt.Sprintf("BMI: %.2f → %s", a.BMI, status[MetricBMI]),
		fmt.Sprintf("Heart Rate: %d → %s", r.HeartRate, status[MetricHeartRate]),
		fmt.Sprintf("Blood Pressure: %d → %s", r.BloodPressure, status[MetricBloodPressure]),
		fmt.Sprintf("Sugar Level: %d → %s", r.Sugar, status[MetricSugar]),
		fmt.Sprintf("Temperature: %s°C → %s", FormatDecimal(r.TemperatureC), status[MetricTemperature]),
		fmt.Sprintf("Pulse Rate: %d → %s", r.Pulse, status[MetricPulse]),
		FinalLine(a),
	}
}

// FinalLine formats the aggregate score and remark.
func FinalLine(a types.Assessment) string {
	return fmt.Sprintf("Final Health Score: %.2f/100 → %s %s", a.Score, RemarkIcon(a.Remark), a.Remark)
}

// FormatDecimal prints v in its shortest form but always with a fractional
// part, so 37 renders as "37.0" and 36.65 as "36.65".
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
