package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"weightlog/internal/domain"
)

// LoadRecords returns the profile's records in insertion order. Rows whose
// unit or weight no longer validate are dropped and counted.
func (d *DB) LoadRecords(ctx context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats) {
	out := []domain.NormalizedRecord{}
	rows, err := d.sql.QueryContext(ctx,
		"SELECT recorded_at, raw_weight, unit FROM weight_records WHERE profile = $1 ORDER BY id;", profile)
	if err != nil {
		return out, domain.LoadStats{Err: fmt.Errorf("load %q: %w: %w", profile, domain.ErrIO, err)}
	}
	defer rows.Close()

	var stats domain.LoadStats
	for rows.Next() {
		var (
			at   time.Time
			w    float64
			unit string
		)
		if err := rows.Scan(&at, &w, &unit); err != nil {
			return []domain.NormalizedRecord{}, domain.LoadStats{Err: fmt.Errorf("load %q: %w: %w", profile, domain.ErrIO, err)}
		}
		stats.Rows++
		u, err := domain.ParseUnit(unit)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			stats.Dropped++
			d.log.Debug().Str("profile", profile).Float64("weight", w).Str("unit", unit).Msg("row skipped")
			continue
		}
		out = append(out, domain.Normalize(domain.WeightRecord{Timestamp: at, RawWeight: w, Unit: u}))
	}
	if err := rows.Err(); err != nil {
		return []domain.NormalizedRecord{}, domain.LoadStats{Err: fmt.Errorf("load %q: %w: %w", profile, domain.ErrIO, err)}
	}
	return out, stats
}

// AppendRecord inserts rec at the end of the profile.
func (d *DB) AppendRecord(ctx context.Context, profile string, rec domain.WeightRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.Unit, _ = domain.ParseUnit(string(rec.Unit))

	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO weight_records(profile, recorded_at, raw_weight, unit) VALUES($1, $2, $3, $4);",
		profile, rec.Timestamp.UTC(), rec.RawWeight, string(rec.Unit),
	)
	if err != nil {
		return fmt.Errorf("append to %q: %w: %w", profile, domain.ErrIO, err)
	}
	return nil
}
