package csvfile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"weightlog/internal/domain"
)

// Store implements the domain repository ports over a directory of record
// files.
type Store struct {
	dir   string
	codec Codec
	log   zerolog.Logger
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*Store)(nil)
var _ domain.RecordRepository = (*Store)(nil)

// New returns a Store rooted at dir. Zone-less dates are read and written
// in loc.
func New(dir string, loc *time.Location, log zerolog.Logger) *Store {
	s := &Store{
		dir:   dir,
		codec: NewCodec(loc),
		log:   log.With().Str("component", "csvfile").Str("dir", dir).Logger(),
	}
	s.codec.OnSkip = func(line int, err error) {
		s.log.Debug().Int("line", line).Err(err).Msg("row skipped")
	}
	return s
}

// Dir returns the directory holding the record files.
func (s *Store) Dir() string { return s.dir }

// ListProfiles returns the profile names found in the store directory.
func (s *Store) ListProfiles(_ context.Context) []string {
	names, err := listProfiles(s.dir)
	if err != nil {
		s.log.Warn().Err(err).Msg("list profiles")
	}
	return names
}

// CreateProfile creates an empty record file for name.
func (s *Store) CreateProfile(_ context.Context, name string) error {
	if err := CreateProfile(s.dir, name); err != nil {
		return err
	}
	s.log.Info().Str("profile", name).Msg("profile created")
	return nil
}

// LoadRecords reads and normalises the profile's record file.
func (s *Store) LoadRecords(_ context.Context, profile string) ([]domain.NormalizedRecord, domain.LoadStats) {
	path := ProfileFile(s.dir, profile)
	recs, stats := s.codec.Load(path)
	if stats.Err != nil {
		s.log.Warn().Err(stats.Err).Str("profile", profile).Msg("load failed, using empty record set")
		return recs, stats
	}
	s.log.Info().Str("profile", profile).Int("rows", stats.Rows).Int("dropped", stats.Dropped).Msg("records loaded")
	return recs, stats
}

// AppendRecord appends rec to the profile's record file.
func (s *Store) AppendRecord(_ context.Context, profile string, rec domain.WeightRecord) error {
	return s.codec.Append(ProfileFile(s.dir, profile), rec)
}
