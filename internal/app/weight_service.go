// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"weightlog/internal/domain"
)

// WeightService encapsulates weight-recording use cases.
type WeightService struct {
	repo domain.RecordRepository
	now  func() time.Time
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.RecordRepository) *WeightService {
	return &WeightService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to stamp new records.
func (s *WeightService) WithClock(now func() time.Time) *WeightService {
	s.now = now
	return s
}

// Load returns the profile's normalised records in file order. A failed
// read yields an empty slice; stats.Err tells the two cases apart.
func (s *WeightService) Load(ctx context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats) {
	return s.repo.LoadRecords(ctx, profile)
}

// RecordWeight validates and appends a measurement stamped with the
// current time, truncated to the second.
func (s *WeightService) RecordWeight(ctx context.Context, profile string, value float64, unit string) (domain.WeightRecord, error) {
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return domain.WeightRecord{}, err
	}
	rec := domain.WeightRecord{
		Timestamp: s.now().Truncate(time.Second),
		RawWeight: value,
		Unit:      u,
	}
	if err := rec.Validate(); err != nil {
		return domain.WeightRecord{}, err
	}
	if err := s.repo.AppendRecord(ctx, profile, rec); err != nil {
		return domain.WeightRecord{}, err
	}
	return rec, nil
}

// ParseWeight parses free-text weight input.
func ParseWeight(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("please enter a valid weight: %w", domain.ErrInvalidInput)
	}
	return v, nil
}

// Preview renders the live conversion shown next to the entry form, e.g.
// "150 lbs = 68.04 kg".
func Preview(input, unit string) (string, error) {
	v, err := ParseWeight(input)
	if err != nil {
		return "", err
	}
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return "", err
	}
	to := domain.UnitKg
	if u == domain.UnitKg {
		to = domain.UnitLbs
	}
	return fmt.Sprintf("%s %s = %.2f %s",
		strconv.FormatFloat(v, 'f', -1, 64), u, domain.ConvertWeight(v, u, to), to), nil
}
