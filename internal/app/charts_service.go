package app

import (
	"fmt"
	"io"
	"time"

	"weightlog/internal/domain"
)

// Point is one sample of the plotted series.
type Point struct {
	Time time.Time `json:"time"`
	Lbs  float64   `json:"lbs"`
}

// ToSeriesLbs maps each record's canonical weight to pounds, keeping order.
func ToSeriesLbs(records []domain.NormalizedRecord) []Point {
	points := make([]Point, 0, len(records))
	for _, r := range records {
		points = append(points, Point{Time: r.Timestamp, Lbs: domain.KgToLbs(r.WeightKg)})
	}
	return points
}

// ChartRenderer draws a time-axis line chart of a series.
type ChartRenderer interface {
	RenderLine(w io.Writer, title string, points []Point) error
}

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	renderer ChartRenderer
}

// NewChartsService creates a ChartsService drawing with r.
func NewChartsService(r ChartRenderer) *ChartsService {
	return &ChartsService{renderer: r}
}

// Render draws the profile's weight history in pounds.
func (s *ChartsService) Render(w io.Writer, profile string, records []domain.NormalizedRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no weight data available to graph: %w", domain.ErrNoData)
	}
	return s.renderer.RenderLine(w, "Weight Over Time - Profile: "+profile, ToSeriesLbs(records))
}
