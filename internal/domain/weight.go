package domain

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Unit is a recognised weight unit.
type Unit string

const (
	UnitLbs Unit = "lbs"
	UnitKg  Unit = "kg"
)

// ParseUnit normalises s case-insensitively to one of the recognised units.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitLbs:
		return UnitLbs, nil
	case UnitKg:
		return UnitKg, nil
	}
	return "", fmt.Errorf("unit must be %q or %q, got %q: %w", UnitLbs, UnitKg, s, ErrInvalidInput)
}

// WeightRecord is one measurement as persisted in a profile.
type WeightRecord struct {
	Timestamp time.Time `json:"timestamp"`
	RawWeight float64   `json:"rawWeight"`
	Unit      Unit      `json:"unit"`
}

// Validate reports whether the record may be stored.
func (r WeightRecord) Validate() error {
	if math.IsNaN(r.RawWeight) || math.IsInf(r.RawWeight, 0) {
		return fmt.Errorf("weight must be a finite number: %w", ErrInvalidInput)
	}
	if r.RawWeight <= 0 {
		return fmt.Errorf("weight must be > 0: %w", ErrInvalidInput)
	}
	if _, err := ParseUnit(string(r.Unit)); err != nil {
		return err
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required: %w", ErrInvalidInput)
	}
	return nil
}

// NormalizedRecord is a WeightRecord with its canonical weight in kilograms.
type NormalizedRecord struct {
	WeightRecord
	WeightKg float64 `json:"weightKg"`
}

// Normalize derives the canonical kilogram weight of r.
func Normalize(r WeightRecord) NormalizedRecord {
	return NormalizedRecord{WeightRecord: r, WeightKg: ToKg(r.RawWeight, r.Unit)}
}

// LoadStats describes how a load went. Rows counts data rows seen (header
// excluded), Dropped those that failed to parse. Err is set only when the
// backing store could not be read at all.
type LoadStats struct {
	Rows    int
	Dropped int
	Err     error
}

// RecordRepository is the port for a profile's weight records.
type RecordRepository interface {
	// LoadRecords never fails as a whole: unreadable storage yields no
	// records with stats.Err set.
	LoadRecords(ctx context.Context, profile string) ([]NormalizedRecord, LoadStats)
	AppendRecord(ctx context.Context, profile string, rec WeightRecord) error
}
