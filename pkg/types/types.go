package types

// Gender values accepted by the form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Genders lists the accepted gender values in form order.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// Reading is one submitted form instance. Range constraints are enforced by
// the shells through the validate tags before a Reading reaches the evaluator.
type Reading struct {
	Name          string  `json:"name"`
	Age           int     `json:"age" validate:"min=1,max=120"`
	Gender        string  `json:"gender" validate:"oneof=Male Female Other"`
	WeightKg      float64 `json:"weight_kg" validate:"min=1"`
	HeightCm      float64 `json:"height_cm" validate:"min=30"`
	HeartRate     int     `json:"heart_rate" validate:"min=1"`
	BloodPressure int     `json:"blood_pressure" validate:"min=1"`
	Sugar         int     `json:"sugar" validate:"min=1"`
	TemperatureC  float64 `json:"temperature_c" validate:"min=20"`
	Pulse         int     `json:"pulse" validate:"min=1"`
}

// MetricResult is the status and score of one metric.
type MetricResult struct {
	Metric string `json:"metric"`
	Status string `json:"status"`
	Score  int    `json:"score"`
}

// Assessment holds everything derived from one Reading.
type Assessment struct {
	// Metrics are in the fixed order BMI, Heart Rate, Blood Pressure,
	// Sugar, Temperature, Pulse.
	Metrics []MetricResult `json:"metrics"`

	// BMI is the unrounded body-mass index.
	BMI float64 `json:"bmi"`

	// Score is the unrounded mean of the six metric scores.
	Score float64 `json:"score"`

	Remark string `json:"remark"`
}

// HealthRecord is one entry of the session log. Never mutated once appended.
type HealthRecord struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // HH:MM:SS
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	BMI           float64 `json:"bmi"`
	HeartRate     int     `json:"heart_rate"`
	BloodPressure int     `json:"blood_pressure"`
	Sugar         int     `json:"sugar"`
	TemperatureC  float64 `json:"temperature_c"`
	Pulse         int     `json:"pulse"`
	HealthScore   float64 `json:"health_score"`
	Remark        string  `json:"remark"`
}

// DailyCount is the number of records submitted on one date.
type DailyCount struct {
	Date       string `json:"date"`
	TotalTests int    `json:"total_tests"`
}

// ChartBar is one labeled value of the vitals bar chart.
type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Chart is the bar chart drawn for one record.
type Chart struct {
	Title string     `json:"title"`
	Bars  []ChartBar `json:"bars"`
}

// Snapshot is the full session view: every record plus the daily summary.
// It is the payload of GET /api/v1/snapshot and of the websocket stream.
type Snapshot struct {
	Records     []HealthRecord `json:"records"`
	Daily       []DailyCount   `json:"daily"`
	GeneratedAt string         `json:"generated_at"` // RFC3339
}
