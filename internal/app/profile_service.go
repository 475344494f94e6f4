package app

import (
	"context"
	"fmt"
	"slices"

	"weightlog/internal/domain"
)

// ProfileService encapsulates profile enumeration and creation.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// List returns the known profile names in ascending order.
func (s *ProfileService) List(ctx context.Context) []string {
	return s.repo.ListProfiles(ctx)
}

// Exists reports whether name is a known profile. Case-sensitive.
func (s *ProfileService) Exists(ctx context.Context, name string) bool {
	return slices.Contains(s.repo.ListProfiles(ctx), name)
}

// Create validates name and creates an empty profile, returning the
// trimmed name actually stored.
func (s *ProfileService) Create(ctx context.Context, name string) (string, error) {
	name, err := domain.NormalizeProfileName(name)
	if err != nil {
		return "", err
	}
	if s.Exists(ctx, name) {
		return "", fmt.Errorf("profile %q already exists: %w", name, domain.ErrInvalidInput)
	}
	if err := s.repo.CreateProfile(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}
