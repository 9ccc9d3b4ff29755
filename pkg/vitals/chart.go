package vitals

import (
	"fmt"

	"github.com/healthtech/healthtech/pkg/types"
)

// Chart labels in display order.
const (
	LabelHeartRate     = "Heart Rate"
	LabelBloodPressure = "Blood Pressure"
	LabelSugar         = "Sugar"
	LabelTemperature   = "Temperature"
	LabelPulse         = "Pulse"
	LabelBMI           = "BMI"
	LabelHealthScore   = "Health Score"
)

var chartColors = []string{"#66b3ff", "#99ff99", "#ffcc99", "#ff9999", "#c2c2f0", "#ffb366", "#66ff99"}

// Chart builds the vitals bar chart for a stored record, whose BMI and score
// are already rounded to two decimals.
func Chart(rec types.HealthRecord) types.Chart {
	return chart(rec, rec.BMI, rec.HealthScore)
}

// AssessmentChart builds the chart for a fresh submission, plotting the
// unrounded BMI and score from a.
func AssessmentChart(rec types.HealthRecord, a types.Assessment) types.Chart {
	return chart(rec, a.BMI, a.Score)
}

func chart(rec types.HealthRecord, bmi, score float64) types.Chart {
	labels := []string{
		LabelHeartRate, LabelBloodPressure, LabelSugar, LabelTemperature,
		LabelPulse, LabelBMI, LabelHealthScore,
	}
	values := []float64{
		float64(rec.HeartRate),
		float64(rec.BloodPressure),
		float64(rec.Sugar),
		rec.TemperatureC,
		float64(rec.Pulse),
		bmi,
		score,
	}

	bars := make([]types.ChartBar, len(labels))
	for i := range labels {
		bars[i] = types.ChartBar{Label: labels[i], Value: values[i], Color: chartColors[i]}
	}
	return types.Chart{
		Title: fmt.Sprintf("Health Vitals & Score - %s (Age: %d)", rec.Name, rec.Age),
		Bars:  bars,
	}
}
