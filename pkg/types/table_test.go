package types

import "testing"

func TestHealthRecordCells(t *testing.T) {
	rec := HealthRecord{
		Date: "2026-01-01", Time: "09:00:00", Name: "Ada", Age: 36, Gender: GenderFemale,
		WeightKg: 70.5, HeightCm: 175, BMI: 23.02, HeartRate: 72, BloodPressure: 110,
		Sugar: 95, TemperatureC: 36.6, Pulse: 72, HealthScore: 100, Remark: "Excellent Health",
	}
	cells := rec.Cells()
	if len(cells) != len(RecordColumns) {
		t.Fatalf("cells: got %d, want %d", len(cells), len(RecordColumns))
	}
	want := []string{"2026-01-01", "09:00:00", "Ada", "36", "Female", "70.5", "175", "23.02",
		"72", "110", "95", "36.6", "72", "100", "Excellent Health"}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] (%s): got %q, want %q", i, RecordColumns[i], cells[i], want[i])
		}
	}
}

func TestDailyCountCells(t *testing.T) {
	got := DailyCount{Date: "2026-01-01", TotalTests: 3}.Cells()
	if got[0] != "2026-01-01" || got[1] != "3" {
		t.Errorf("cells: got %v", got)
	}
}
