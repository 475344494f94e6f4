package app_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"weightlog/internal/adapter/memory"
	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func newTracker(t *testing.T, db *memory.DB) *app.Tracker {
	t.Helper()
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	ws := app.NewWeightService(db).WithClock(func() time.Time {
		clock = clock.Add(24 * time.Hour)
		return clock
	})
	return app.NewTracker(app.NewProfileService(db), ws, app.NewChartsService(&mockRenderer{}), zerolog.Nop())
}

func TestTracker_StartsWithoutProfile(t *testing.T) {
	tr := newTracker(t, memory.New())
	ctx := context.Background()

	if st := tr.Start(ctx); st != app.NoProfile {
		t.Fatalf("expected NoProfile, got %v", st)
	}
	if _, err := tr.AddEntry(ctx, 80, "kg"); !errors.Is(err, domain.ErrNoProfile) {
		t.Fatalf("AddEntry: expected ErrNoProfile, got %v", err)
	}
	if _, _, err := tr.Report(); !errors.Is(err, domain.ErrNoProfile) {
		t.Fatalf("Report: expected ErrNoProfile, got %v", err)
	}
	if err := tr.RenderChart(&bytes.Buffer{}); !errors.Is(err, domain.ErrNoProfile) {
		t.Fatalf("RenderChart: expected ErrNoProfile, got %v", err)
	}
}

func TestTracker_StartSelectsFirstProfile(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	for _, n := range []string{"zed", "amy"} {
		if err := db.CreateProfile(ctx, n); err != nil {
			t.Fatal(err)
		}
	}
	tr := newTracker(t, db)
	if st := tr.Start(ctx); st != app.ProfileSelected {
		t.Fatalf("expected ProfileSelected, got %v", st)
	}
	if got := tr.Snapshot().Profile; got != "amy" {
		t.Fatalf("expected amy, got %q", got)
	}
}

func TestTracker_CreateAddReport(t *testing.T) {
	db := memory.New()
	tr := newTracker(t, db)
	ctx := context.Background()

	name, err := tr.CreateProfile(ctx, " alice ")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	snap := tr.Snapshot()
	if name != "alice" || snap.Profile != "alice" || snap.State != app.ProfileSelected || len(snap.Records) != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	if _, _, err := tr.Report(); !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData on empty profile, got %v", err)
	}

	if _, err := tr.AddEntry(ctx, 10, "kg"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddEntry(ctx, 12, "KG"); err != nil {
		t.Fatal(err)
	}
	if got := len(tr.Series()); got != 2 {
		t.Fatalf("expected 2 points, got %d", got)
	}

	profile, r, err := tr.Report()
	if err != nil {
		t.Fatal(err)
	}
	if profile != "alice" || r.Trend.String() != "Gain of 4.41 lbs" {
		t.Fatalf("unexpected report %q %+v", profile, r)
	}

	var buf bytes.Buffer
	if err := tr.RenderChart(&buf); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
}

func TestTracker_FailuresKeepState(t *testing.T) {
	db := memory.New()
	tr := newTracker(t, db)
	ctx := context.Background()
	if _, err := tr.CreateProfile(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddEntry(ctx, 80, "kg"); err != nil {
		t.Fatal(err)
	}

	if _, err := tr.CreateProfile(ctx, "alice"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("duplicate create: expected ErrInvalidInput, got %v", err)
	}
	if _, err := tr.Select(ctx, "nobody"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown select: expected ErrInvalidInput, got %v", err)
	}
	if _, err := tr.AddEntry(ctx, -1, "kg"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad entry: expected ErrInvalidInput, got %v", err)
	}

	snap := tr.Snapshot()
	if snap.Profile != "alice" || len(snap.Records) != 1 {
		t.Fatalf("state changed after failures: %+v", snap)
	}
}

func TestTracker_SwitchReplacesRecords(t *testing.T) {
	db := memory.New()
	tr := newTracker(t, db)
	ctx := context.Background()

	if _, err := tr.CreateProfile(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddEntry(ctx, 80, "kg"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.CreateProfile(ctx, "bob"); err != nil {
		t.Fatal(err)
	}
	if n := len(tr.Snapshot().Records); n != 0 {
		t.Fatalf("expected bob to start empty, got %d records", n)
	}
	snap, err := tr.Select(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Profile != "alice" || len(snap.Records) != 1 {
		t.Fatalf("unexpected snapshot from Select: %+v", snap)
	}
	if n := len(tr.Snapshot().Records); n != 1 {
		t.Fatalf("expected alice's record after switching back, got %d", n)
	}
}

func TestTracker_OverviewIsConsistent(t *testing.T) {
	db := memory.New()
	tr := newTracker(t, db)
	ctx := context.Background()

	// alice holds one record, bob two.
	for name, n := range map[string]int{"alice": 1, "bob": 2} {
		if _, err := tr.CreateProfile(ctx, name); err != nil {
			t.Fatal(err)
		}
		for j := 0; j < n; j++ {
			if _, err := tr.AddEntry(ctx, 80, "kg"); err != nil {
				t.Fatal(err)
			}
		}
	}
	want := map[string]int{"alice": 1, "bob": 2}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			name := "alice"
			if i%2 == 1 {
				name = "bob"
			}
			if _, err := tr.Select(ctx, name); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for j := 0; j < 200; j++ {
		profiles, snap := tr.Overview(ctx)
		if len(profiles) != 2 {
			t.Errorf("expected 2 profiles, got %v", profiles)
			break
		}
		if len(snap.Records) != want[snap.Profile] {
			t.Errorf("snapshot pairs %q with %d records", snap.Profile, len(snap.Records))
			break
		}
	}
	wg.Wait()
}
