package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type mockRecordRepo struct {
	loadFn   func(ctx context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats)
	appendFn func(ctx context.Context, profile string, rec domain.WeightRecord) error
}

func (m *mockRecordRepo) LoadRecords(ctx context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats) {
	if m.loadFn != nil {
		return m.loadFn(ctx, profile)
	}
	return []domain.NormalizedRecord{}, domain.LoadStats{}
}

func (m *mockRecordRepo) AppendRecord(ctx context.Context, profile string, rec domain.WeightRecord) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, profile, rec)
	}
	return nil
}

func TestRecordWeight_Validation(t *testing.T) {
	called := false
	svc := app.NewWeightService(&mockRecordRepo{
		appendFn: func(_ context.Context, _ string, _ domain.WeightRecord) error {
			called = true
			return nil
		},
	})

	tests := []struct {
		name  string
		value float64
		unit  string
	}{
		{"zero value", 0, "kg"},
		{"negative value", -5, "kg"},
		{"bad unit", 80, "stones"},
		{"empty unit", 80, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordWeight(context.Background(), "alice", tc.value, tc.unit)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if called {
		t.Fatal("repository must not be called for invalid input")
	}
}

func TestRecordWeight_Success(t *testing.T) {
	now := time.Date(2024, 1, 2, 7, 30, 15, 999, time.UTC)
	var got domain.WeightRecord
	var gotProfile string
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, profile string, rec domain.WeightRecord) error {
			gotProfile, got = profile, rec
			return nil
		},
	}
	svc := app.NewWeightService(repo).WithClock(func() time.Time { return now })
	rec, err := svc.RecordWeight(context.Background(), "alice", 150, "LBS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotProfile != "alice" {
		t.Fatalf("unexpected profile %q", gotProfile)
	}
	if got != rec || rec.Unit != domain.UnitLbs || rec.RawWeight != 150 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !rec.Timestamp.Equal(now.Truncate(time.Second)) {
		t.Fatalf("unexpected timestamp %v", rec.Timestamp)
	}
}

func TestRecordWeight_RepoError(t *testing.T) {
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, _ string, _ domain.WeightRecord) error {
			return domain.ErrIO
		},
	}
	svc := app.NewWeightService(repo)
	_, err := svc.RecordWeight(context.Background(), "alice", 80, "kg")
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected ErrIO from repo, got %v", err)
	}
}

func TestParseWeight(t *testing.T) {
	if v, err := app.ParseWeight(" 150.5 "); err != nil || v != 150.5 {
		t.Fatalf("ParseWeight = %v, %v", v, err)
	}
	for _, in := range []string{"", "abc", "NaN", "Inf", "12kg"} {
		if _, err := app.ParseWeight(in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ParseWeight(%q) err = %v; want ErrInvalidInput", in, err)
		}
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		input, unit string
		want        string
	}{
		{"150", "lbs", "150 lbs = 68.04 kg"},
		{"68", "kg", "68 kg = 149.91 lbs"},
		{"70.5", "KG", "70.5 kg = 155.43 lbs"},
	}
	for _, tc := range tests {
		got, err := app.Preview(tc.input, tc.unit)
		if err != nil {
			t.Fatalf("Preview(%q, %q): %v", tc.input, tc.unit, err)
		}
		if got != tc.want {
			t.Errorf("Preview(%q, %q) = %q; want %q", tc.input, tc.unit, got, tc.want)
		}
	}
	if got, err := app.Preview("abc", "kg"); err == nil || got != "" {
		t.Errorf("expected empty preview and error, got %q, %v", got, err)
	}
}
