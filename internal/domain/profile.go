// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"fmt"
	"strings"
)

// NormalizeProfileName trims s and rejects names that are empty or cannot
// be used as a file stem.
func NormalizeProfileName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", fmt.Errorf("profile name is empty: %w", ErrInvalidInput)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("profile name %q contains a path separator: %w", name, ErrInvalidInput)
	}
	return name, nil
}

// ProfileRepository is the port for enumerating and creating profiles.
// Names compare case-sensitively.
type ProfileRepository interface {
	// ListProfiles returns profile names in ascending order. Access
	// failures yield an empty list rather than an error.
	ListProfiles(ctx context.Context) []string
	// CreateProfile fails with ErrInvalidInput if name already exists.
	CreateProfile(ctx context.Context, name string) error
}
