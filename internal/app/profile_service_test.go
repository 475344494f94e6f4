package app_test

import (
	"context"
	"errors"
	"testing"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type mockProfileRepo struct {
	listFn   func(ctx context.Context) []string
	createFn func(ctx context.Context, name string) error
}

func (m *mockProfileRepo) ListProfiles(ctx context.Context) []string {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []string{}
}

func (m *mockProfileRepo) CreateProfile(ctx context.Context, name string) error {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return nil
}

func TestCreateProfile_Validation(t *testing.T) {
	created := false
	svc := app.NewProfileService(&mockProfileRepo{
		listFn: func(context.Context) []string { return []string{"alice"} },
		createFn: func(context.Context, string) error {
			created = true
			return nil
		},
	})

	for _, name := range []string{"", "  ", "alice", " alice"} {
		if _, err := svc.Create(context.Background(), name); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Create(%q) err = %v; want ErrInvalidInput", name, err)
		}
	}
	if created {
		t.Fatal("repository must not be called for rejected names")
	}
}

// Names compare case-sensitively; whether "Alice" and "alice" should clash
// is an open product question.
func TestCreateProfile_CaseSensitive(t *testing.T) {
	var got string
	svc := app.NewProfileService(&mockProfileRepo{
		listFn: func(context.Context) []string { return []string{"alice"} },
		createFn: func(_ context.Context, name string) error {
			got = name
			return nil
		},
	})
	name, err := svc.Create(context.Background(), " Alice ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Alice" || got != "Alice" {
		t.Fatalf("expected trimmed name, got %q / %q", name, got)
	}
}

func TestCreateProfile_RepoError(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{
		createFn: func(context.Context, string) error { return domain.ErrIO },
	})
	if _, err := svc.Create(context.Background(), "bob"); !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestProfileExists(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{
		listFn: func(context.Context) []string { return []string{"alice", "bob"} },
	})
	if !svc.Exists(context.Background(), "bob") || svc.Exists(context.Background(), "Bob") {
		t.Fatal("unexpected Exists result")
	}
}
