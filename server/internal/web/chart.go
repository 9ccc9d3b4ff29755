package web

import (
	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
)

// SVG geometry of the bar chart.
const (
	chartWidth  = 760
	chartHeight = 380
	plotTop     = 40
	plotBottom  = 280
	plotLeft    = 60
	barWidth    = 64
	barGap      = 32
)

type barView struct {
	X, Y, W, H   float64
	LabelX       float64
	ValueY       float64
	Label, Value string
	Color        string
}

type chartView struct {
	Title         string
	Width, Height int
	MidX          int
	AxisY         int
	AxisX1        int
	AxisX2        int
	Bars          []barView
}

// layoutChart scales the bars of c so the tallest fills the plot area.
func layoutChart(c types.Chart) chartView {
	maxV := 0.0
	for _, b := range c.Bars {
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	if maxV <= 0 {
		maxV = 1
	}

	plotH := float64(plotBottom - plotTop)
	bars := make([]barView, len(c.Bars))
	for i, b := range c.Bars {
		h := b.Value / maxV * plotH
		x := float64(plotLeft + i*(barWidth+barGap))
		bars[i] = barView{
			X:      x,
			Y:      plotBottom - h,
			W:      barWidth,
			H:      h,
			LabelX: x + barWidth/2,
			ValueY: plotBottom - h - 6,
			Label:  b.Label,
			Value:  vitals.FormatDecimal(vitals.Round2(b.Value)),
			Color:  b.Color,
		}
	}

	return chartView{
		Title:  c.Title,
		Width:  chartWidth,
		Height: chartHeight,
		MidX:   chartWidth / 2,
		AxisY:  plotBottom,
		AxisX1: plotLeft - 10,
		AxisX2: plotLeft + len(c.Bars)*(barWidth+barGap),
		Bars:   bars,
	}
}
