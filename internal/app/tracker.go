package app

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"weightlog/internal/domain"
)

// State is the profile-selection state of a Tracker.
type State int

const (
	NoProfile State = iota
	ProfileSelected
)

func (s State) String() string {
	if s == ProfileSelected {
		return "ProfileSelected"
	}
	return "NoProfile"
}

// Snapshot is a copy of the Tracker's current view.
type Snapshot struct {
	State   State                     `json:"-"`
	Profile string                    `json:"profile"`
	Records []domain.NormalizedRecord `json:"records"`
	Stats   domain.LoadStats          `json:"-"`
}

// Tracker is the top-level controller. It owns the current profile and its
// in-memory record list; selecting or creating a profile always replaces
// the list with a fresh load. Calls are serialised.
type Tracker struct {
	profiles *ProfileService
	weights  *WeightService
	charts   *ChartsService
	log      zerolog.Logger

	mu      sync.Mutex
	current string
	records []domain.NormalizedRecord
	stats   domain.LoadStats
}

// NewTracker creates a Tracker in the NoProfile state.
func NewTracker(ps *ProfileService, ws *WeightService, cs *ChartsService, log zerolog.Logger) *Tracker {
	return &Tracker{
		profiles: ps,
		weights:  ws,
		charts:   cs,
		log:      log.With().Str("component", "tracker").Logger(),
		records:  []domain.NormalizedRecord{},
	}
}

// Start selects the first profile by name, if there is one.
func (t *Tracker) Start(ctx context.Context) State {
	names := t.profiles.List(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(names) > 0 {
		t.selectLocked(ctx, names[0])
	}
	return t.stateLocked()
}

// Overview returns the known profiles together with a snapshot taken under
// the same lock.
func (t *Tracker) Overview(ctx context.Context) ([]string, Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profiles.List(ctx), t.snapshotLocked()
}

// Select makes name the current profile, loads its records and returns the
// resulting snapshot. An unknown name fails with domain.ErrInvalidInput and
// leaves the state unchanged.
func (t *Tracker) Select(ctx context.Context, name string) (Snapshot, error) {
	if !t.profiles.Exists(ctx, name) {
		return Snapshot{}, fmt.Errorf("profile %q does not exist: %w", name, domain.ErrInvalidInput)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectLocked(ctx, name)
	return t.snapshotLocked(), nil
}

// CreateProfile creates name and selects it.
func (t *Tracker) CreateProfile(ctx context.Context, name string) (string, error) {
	created, err := t.profiles.Create(ctx, name)
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectLocked(ctx, created)
	return created, nil
}

// AddEntry records a weight for the current profile and reloads it.
func (t *Tracker) AddEntry(ctx context.Context, value float64, unit string) (domain.WeightRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == "" {
		return domain.WeightRecord{}, fmt.Errorf("select a profile or create a new one: %w", domain.ErrNoProfile)
	}
	rec, err := t.weights.RecordWeight(ctx, t.current, value, unit)
	if err != nil {
		return domain.WeightRecord{}, err
	}
	t.reloadLocked(ctx)
	return rec, nil
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		State:   t.stateLocked(),
		Profile: t.current,
		Records: slices.Clone(t.records),
		Stats:   t.stats,
	}
}

// Series returns the current profile's plotting series in pounds.
func (t *Tracker) Series() []Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ToSeriesLbs(t.records)
}

// Report summarises the current profile.
func (t *Tracker) Report() (string, *Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == "" {
		return "", nil, fmt.Errorf("select a profile or create a new one: %w", domain.ErrNoProfile)
	}
	r, err := Summarize(t.records)
	return t.current, r, err
}

// RenderChart draws the current profile's history to w.
func (t *Tracker) RenderChart(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == "" {
		return fmt.Errorf("select a profile or create a new one: %w", domain.ErrNoProfile)
	}
	return t.charts.Render(w, t.current, t.records)
}

func (t *Tracker) selectLocked(ctx context.Context, name string) {
	t.current = name
	t.reloadLocked(ctx)
	t.log.Info().Str("profile", name).Int("records", len(t.records)).Msg("profile selected")
}

func (t *Tracker) reloadLocked(ctx context.Context) {
	recs, stats := t.weights.Load(ctx, t.current)
	if recs == nil {
		recs = []domain.NormalizedRecord{}
	}
	t.records, t.stats = recs, stats
}

func (t *Tracker) stateLocked() State {
	if t.current == "" {
		return NoProfile
	}
	return ProfileSelected
}
