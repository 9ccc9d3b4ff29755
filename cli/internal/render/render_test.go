package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
)

func TestBarChart(t *testing.T) {
	c := types.Chart{
		Title: "Vitals",
		Bars: []types.ChartBar{
			{Label: "Pulse", Value: 50, Color: "#ff9999"},
			{Label: "Health Score", Value: 100, Color: "#66ff99"},
			{Label: "Zero", Value: 0, Color: "#66b3ff"},
		},
	}
	out := BarChart(c, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines: got %d, want 4\n%s", len(lines), out)
	}
	tests := []struct {
		line   string
		blocks int
		value  string
	}{
		{lines[1], 5, "50.0"},
		{lines[2], 10, "100.0"},
		{lines[3], 0, "0.0"},
	}
	for _, tt := range tests {
		if got := strings.Count(tt.line, "█"); got != tt.blocks {
			t.Errorf("%q: got %d blocks, want %d", tt.line, got, tt.blocks)
		}
		if !strings.HasSuffix(tt.line, tt.value) {
			t.Errorf("%q: want suffix %q", tt.line, tt.value)
		}
	}
	if !strings.Contains(lines[0], "Vitals") {
		t.Errorf("title line: got %q", lines[0])
	}
}

func TestBarChart_AlignsLabels(t *testing.T) {
	c := types.Chart{Bars: []types.ChartBar{
		{Label: "BMI", Value: 1},
		{Label: "Heart Rate", Value: 1},
	}}
	lines := strings.Split(BarChart(c, 4), "\n")[1:]
	first := strings.Index(lines[0], "█")
	second := strings.Index(lines[1], "█")
	if lipgloss.Width(lines[0][:first]) != lipgloss.Width(lines[1][:second]) {
		t.Errorf("bars not aligned:\n%s\n%s", lines[0], lines[1])
	}
}

func TestRecords(t *testing.T) {
	if got := Records(nil); !strings.Contains(got, "no records") {
		t.Errorf("empty: got %q", got)
	}
	out := Records([]types.HealthRecord{{
		Date: "2026-01-02", Time: "10:00:00", Name: "Ada", Age: 36, Gender: "Female",
		HealthScore: 91.67, Remark: vitals.RemarkExcellent,
	}})
	for _, want := range []string{"Health Score", "Ada", "91.67", "Excellent Health", "2026-01-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("records table missing %q:\n%s", want, out)
		}
	}
}

func TestDaily(t *testing.T) {
	if got := Daily(nil); !strings.Contains(got, "no tests") {
		t.Errorf("empty: got %q", got)
	}
	out := Daily([]types.DailyCount{{Date: "2026-01-01", TotalTests: 3}})
	for _, want := range []string{"Total Tests", "2026-01-01", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("daily table missing %q:\n%s", want, out)
		}
	}
}

func TestInsights(t *testing.T) {
	if Insights(nil, "") != "" {
		t.Error("empty insights: want empty string")
	}
	out := Insights([]string{"BMI: 22.86 → Normal", "Final Health Score: 100.00/100 → 🌟 Excellent Health"}, vitals.RemarkExcellent)
	for _, want := range []string{"Health Insights", "BMI: 22.86", "Final Health Score"} {
		if !strings.Contains(out, want) {
			t.Errorf("insights missing %q:\n%s", want, out)
		}
	}
}

func TestBarChart_RoundsValueLabels(t *testing.T) {
	c := types.Chart{Bars: []types.ChartBar{{Label: "BMI", Value: 22.857142857142858}}}
	lines := strings.Split(BarChart(c, 4), "\n")
	if !strings.HasSuffix(lines[1], " 22.86") {
		t.Errorf("label: got %q, want suffix 22.86", lines[1])
	}
}
