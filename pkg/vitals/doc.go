// Package vitals scores one vital-sign Reading.
//
// score.go holds the per-metric band functions (BMI, HeartRate, BloodPressure,
// Sugar, Temperature, Pulse), the aggregate mean, and the remark bands.
// Assess runs all of them in the fixed display order and is the only entry
// point the shells use.
//
// chart.go builds the seven-bar chart series shown after a submission;
// insights.go formats the result lines; record.go turns a scored reading
// into the rounded HealthRecord kept in the session log.
//
// Every function is pure: the same Reading always yields the same Assessment.
//
// Remark bands: Excellent ≥90, Good ≥75, Needs Attention ≥60, Critical <60.
package vitals
