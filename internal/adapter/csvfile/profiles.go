// Package csvfile stores profiles as <profile>.csv record files in a
// directory.
package csvfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"weightlog/internal/domain"
)

// Ext is the suffix of every record file.
const Ext = ".csv"

// ProfileFile maps a profile name to its record file. No I/O.
func ProfileFile(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// ListProfiles returns the sorted names of all record files in dir,
// creating dir if absent. Any access failure yields an empty list.
func ListProfiles(dir string) []string {
	names, _ := listProfiles(dir)
	return names
}

func listProfiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return []string{}, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		if name := strings.TrimSuffix(e.Name(), Ext); name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// CreateProfile writes a new record file holding only the header line.
// It fails with domain.ErrInvalidInput when name is empty or already taken
// (compared case-sensitively) and never touches an existing file.
func CreateProfile(dir, name string) error {
	name, err := domain.NormalizeProfileName(name)
	if err != nil {
		return err
	}
	if slices.Contains(ListProfiles(dir), name) {
		return fmt.Errorf("profile %q already exists: %w", name, domain.ErrInvalidInput)
	}

	path := ProfileFile(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("profile %q already exists: %w", name, domain.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, domain.ErrIO, err)
	}
	if _, err := f.WriteString(strings.Join(Header, ",") + "\n"); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write header to %s: %w: %w", path, domain.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w: %w", path, domain.ErrIO, err)
	}
	return nil
}
