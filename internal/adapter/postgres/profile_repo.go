package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"weightlog/internal/domain"
)

// ListProfiles returns all profile names in ascending order.
func (d *DB) ListProfiles(ctx context.Context) []string {
	names := []string{}
	rows, err := d.sql.QueryContext(ctx, "SELECT name FROM profiles ORDER BY name;")
	if err != nil {
		d.log.Warn().Err(err).Msg("list profiles")
		return names
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			d.log.Warn().Err(err).Msg("list profiles")
			return []string{}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		d.log.Warn().Err(err).Msg("list profiles")
		return []string{}
	}
	return names
}

// CreateProfile inserts a new profile row.
func (d *DB) CreateProfile(ctx context.Context, name string) error {
	name, err := domain.NormalizeProfileName(name)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO profiles(name, created_at) VALUES($1, $2);",
		name, time.Now().UTC(),
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("profile %q already exists: %w", name, domain.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("create profile %q: %w: %w", name, domain.ErrIO, err)
	}
	return nil
}
