package app_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type mockRenderer struct {
	title  string
	points []app.Point
	err    error
}

func (m *mockRenderer) RenderLine(w io.Writer, title string, points []app.Point) error {
	m.title, m.points = title, points
	if m.err != nil {
		return m.err
	}
	_, err := w.Write([]byte("chart"))
	return err
}

func exampleRecords() []domain.NormalizedRecord {
	return []domain.NormalizedRecord{
		domain.Normalize(domain.WeightRecord{Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), RawWeight: 150, Unit: domain.UnitLbs}),
		domain.Normalize(domain.WeightRecord{Timestamp: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), RawWeight: 68, Unit: domain.UnitKg}),
	}
}

func TestToSeriesLbs(t *testing.T) {
	points := app.ToSeriesLbs(exampleRecords())
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if math.Abs(points[0].Lbs-150.0) > 0.01 {
		t.Errorf("first point = %v; want ~150.0", points[0].Lbs)
	}
	if math.Abs(points[1].Lbs-149.91) > 0.01 {
		t.Errorf("second point = %v; want ~149.91", points[1].Lbs)
	}
	if !points[0].Time.Before(points[1].Time) {
		t.Error("expected order to be preserved")
	}
	if got := app.ToSeriesLbs(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty series, got %#v", got)
	}
}

func TestChartsRender(t *testing.T) {
	r := &mockRenderer{}
	svc := app.NewChartsService(r)
	var buf bytes.Buffer
	if err := svc.Render(&buf, "alice", exampleRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.title != "Weight Over Time - Profile: alice" {
		t.Errorf("unexpected title %q", r.title)
	}
	if len(r.points) != 2 || buf.String() != "chart" {
		t.Errorf("unexpected render: %v %q", r.points, buf.String())
	}
}

func TestChartsRender_NoData(t *testing.T) {
	svc := app.NewChartsService(&mockRenderer{})
	err := svc.Render(io.Discard, "alice", nil)
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
