// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"weightlog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	profiles map[string][]domain.WeightRecord
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[string][]domain.WeightRecord),
	}
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.RecordRepository = (*DB)(nil)

// --- ProfileRepository ---

// ListProfiles returns all profile names in ascending order.
func (db *DB) ListProfiles(ctx context.Context) []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	names := make([]string, 0, len(db.profiles))
	for name := range db.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateProfile registers an empty profile.
func (db *DB) CreateProfile(ctx context.Context, name string) error {
	name, err := domain.NormalizeProfileName(name)
	if err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.profiles[name]; ok {
		return fmt.Errorf("profile %q already exists: %w", name, domain.ErrInvalidInput)
	}
	db.profiles[name] = []domain.WeightRecord{}
	return nil
}

// --- RecordRepository ---

// LoadRecords returns the profile's records in insertion order.
func (db *DB) LoadRecords(ctx context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats) {
	db.mu.Lock()
	defer db.mu.Unlock()

	recs, ok := db.profiles[profile]
	if !ok {
		return []domain.NormalizedRecord{}, domain.LoadStats{Err: fmt.Errorf("profile %q not found: %w", profile, domain.ErrIO)}
	}
	out := make([]domain.NormalizedRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.Normalize(r))
	}
	return out, domain.LoadStats{Rows: len(recs)}
}

// AppendRecord validates rec and adds it to the end of the profile.
func (db *DB) AppendRecord(ctx context.Context, profile string, rec domain.WeightRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.Unit, _ = domain.ParseUnit(string(rec.Unit))

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.profiles[profile]; !ok {
		return fmt.Errorf("profile %q not found: %w", profile, domain.ErrIO)
	}
	db.profiles[profile] = append(db.profiles[profile], rec)
	return nil
}
