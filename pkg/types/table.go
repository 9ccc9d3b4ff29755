package types

import "strconv"

// RecordColumns are the record table headers, in display order.
var RecordColumns = []string{
	"Date", "Time", "Name", "Age", "Gender", "Weight (kg)", "Height (cm)", "BMI",
	"Heart Rate", "Blood Pressure", "Sugar", "Temperature (°C)", "Pulse",
	"Health Score", "Remark",
}

// DailyColumns are the daily summary headers.
var DailyColumns = []string{"Date", "Total Tests"}

// Cells formats rec as table cells matching RecordColumns.
func (rec HealthRecord) Cells() []string {
	return []string{
		rec.Date,
		rec.Time,
		rec.Name,
		strconv.Itoa(rec.Age),
		rec.Gender,
		formatFloat(rec.WeightKg),
		formatFloat(rec.HeightCm),
		formatFloat(rec.BMI),
		strconv.Itoa(rec.HeartRate),
		strconv.Itoa(rec.BloodPressure),
		strconv.Itoa(rec.Sugar),
		formatFloat(rec.TemperatureC),
		strconv.Itoa(rec.Pulse),
		formatFloat(rec.HealthScore),
		rec.Remark,
	}
}

// Cells formats d as table cells matching DailyColumns.
func (d DailyCount) Cells() []string {
	return []string{d.Date, strconv.Itoa(d.TotalTests)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
