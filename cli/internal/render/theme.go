// Package render draws HealthTech results for a terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/healthtech/healthtech/pkg/vitals"
)

var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Title  = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Header = lipgloss.NewStyle().Foreground(Lavender).Bold(true).Padding(0, 1)
	Cell   = lipgloss.NewStyle().Foreground(Text).Padding(0, 1)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)
)

// RemarkStyle colors a remark by severity.
func RemarkStyle(remark string) lipgloss.Style {
	switch remark {
	case vitals.RemarkExcellent:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case vitals.RemarkGood:
		return lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	case vitals.RemarkAttention:
		return lipgloss.NewStyle().Foreground(Peach).Bold(true)
	case vitals.RemarkCritical:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Text)
	}
}
