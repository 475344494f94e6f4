// Package chart renders weight series as PNG line charts.
package chart

import (
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"weightlog/internal/app"
)

// DateLayout formats x-axis ticks (MMDDYYYY).
const DateLayout = "01022006"

// Renderer draws time-axis line charts with go-chart.
type Renderer struct {
	Width  int
	Height int
}

var _ app.ChartRenderer = (*Renderer)(nil)

// New returns a Renderer producing width x height images. Non-positive
// sizes fall back to 1000x500.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 500
	}
	return &Renderer{Width: width, Height: height}
}

// RenderLine writes a PNG of points to w.
func (r *Renderer) RenderLine(w io.Writer, title string, points []app.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("render %q: empty series", title)
	}

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	minY, maxY := points[0].Lbs, points[0].Lbs
	for _, p := range points {
		xs = append(xs, p.Time)
		ys = append(ys, p.Lbs)
		minY = min(minY, p.Lbs)
		maxY = max(maxY, p.Lbs)
	}
	// go-chart needs a non-zero x range.
	if xs[0].Equal(xs[len(xs)-1]) {
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[len(ys)-1])
	}

	style := gochart.Style{
		StrokeColor: gochart.ColorBlue,
		StrokeWidth: 2,
		DotColor:    gochart.ColorBlue,
		DotWidth:    4,
	}
	if len(points) == 1 {
		style.DotWidth = 6
	}

	yAxis := gochart.YAxis{Name: "Weight (lbs)"}
	if minY == maxY {
		yAxis.Range = &gochart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      yAxis,
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat(DateLayout),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{Name: "Weight (lbs)", XValues: xs, YValues: ys, Style: style},
		},
	}
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	return nil
}
