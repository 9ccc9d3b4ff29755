package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
)

// DefaultBarWidth is the number of cells the longest bar occupies.
const DefaultBarWidth = 40

const remarkCol = 14

// Insights renders the per-metric insight lines in a panel, with the final
// line colored by remark.
func Insights(lines []string, remark string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Title.Render("Health Insights"))
	for i, line := range lines {
		b.WriteByte('\n')
		if i == len(lines)-1 {
			b.WriteString(RemarkStyle(remark).Render(line))
			continue
		}
		b.WriteString(line)
	}
	return Panel.Render(b.String())
}

// BarChart renders c as horizontal bars scaled so the largest value spans
// width cells. Labels are left-aligned and values printed after each bar.
func BarChart(c types.Chart, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	var maxVal float64
	labelWidth := 0
	for _, bar := range c.Bars {
		maxVal = math.Max(maxVal, bar.Value)
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(Title.Render(c.Title))
	for _, bar := range c.Bars {
		n := 0
		if maxVal > 0 && bar.Value > 0 {
			n = int(math.Round(bar.Value / maxVal * float64(width)))
			if n == 0 {
				n = 1
			}
		}
		fill := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(strings.Repeat("█", n))
		label := bar.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		fmt.Fprintf(&b, "\n%s %s %s", Muted.Render(label), fill, vitals.FormatDecimal(vitals.Round2(bar.Value)))
	}
	return b.String()
}

// Records renders the session log as a table. The remark column is colored
// by severity.
func Records(records []types.HealthRecord) string {
	if len(records) == 0 {
		return Muted.Render("no records yet")
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Cells()
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Surface1)).
		Headers(types.RecordColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header
			}
			if col == remarkCol && row >= 0 && row < len(records) {
				return RemarkStyle(records[row].Remark).Padding(0, 1)
			}
			return Cell
		})
	return t.Render()
}

// Daily renders the per-date test counts as a table.
func Daily(daily []types.DailyCount) string {
	if len(daily) == 0 {
		return Muted.Render("no tests recorded")
	}
	rows := make([][]string, len(daily))
	for i, d := range daily {
		rows[i] = d.Cells()
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Surface1)).
		Headers(types.DailyColumns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header
			}
			return Cell
		})
	return t.Render()
}
