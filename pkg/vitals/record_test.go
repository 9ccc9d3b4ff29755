package vitals

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	r := normalReading()
	r.WeightKg = 120
	r.HeartRate = 110
	a, err := Assess(r)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	rec := NewRecord(r, a, time.Date(2026, 10, 14, 8, 30, 5, 0, time.UTC))
	if rec.Date != "2026-10-14" || rec.Time != "08:30:05" {
		t.Errorf("timestamp: got %s %s", rec.Date, rec.Time)
	}
	if rec.BMI != 39.18 {
		t.Errorf("BMI: got %v, want 39.18", rec.BMI)
	}
	if rec.HealthScore != 83.33 {
		t.Errorf("HealthScore: got %v, want 83.33", rec.HealthScore)
	}
	if rec.Remark != RemarkGood {
		t.Errorf("Remark: got %q", rec.Remark)
	}
	if rec.ID != "" {
		t.Errorf("ID: got %q, want empty", rec.ID)
	}
}

func TestRound2(t *testing.T) {
	tests := map[float64]float64{
		22.857142: 22.86,
		83.333333: 83.33,
		91.666666: 91.67,
		100:       100,
	}
	for in, want := range tests {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v): got %v, want %v", in, got, want)
		}
	}
}
