// Package store persists the simulation snapshot as JSON on disk. The core
// treats it as an opaque load/store collaborator.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bonsai/internal/bonsai"
)

var (
	// ErrNotFound means no save file exists yet; the caller starts fresh.
	ErrNotFound = errors.New("no saved tree")
	// ErrLoadFailed means the save file exists but could not be decoded.
	// Recoverable: the caller falls back to a fresh tree.
	ErrLoadFailed = errors.New("load failed")
)

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

// DefaultPath returns the save location under the user's config directory,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	path := filepath.Join(home, ".config", "bonsai", "bonsai.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return path, nil
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot atomically: tmp file first, then rename.
func (s *Store) Save(snap bonsai.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write tmp snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot. A missing file is ErrNotFound; a file that cannot
// be decoded is ErrLoadFailed. Both are recoverable.
func (s *Store) Load() (bonsai.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return bonsai.Snapshot{}, ErrNotFound
		}
		return bonsai.Snapshot{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	var snap bonsai.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return bonsai.Snapshot{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return snap, nil
}
