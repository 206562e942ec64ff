// Package store implements the persistent storage boundary: a small
// key-value JSON store backed by diskv, with a change subscription built on
// fsnotify so that several client instances sharing one state directory see
// each other's writes.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// KeySession is the key under which the serialized session record lives.
const KeySession = "session"

// Store is a diskv-backed key-value store rooted at a state directory.
// Values are opaque byte slices; callers own serialization.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New opens (creating if needed) a Store rooted at stateDir. An empty
// stateDir resolves to a "realworld-tui" directory under the user config
// dir.
func New(stateDir string) (*Store, error) {
	if stateDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		stateDir = filepath.Join(configDir, "realworld-tui")
	}

	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     stateDir,
			CacheSizeMax: 64 * 1024,
		}),
		basePath: stateDir,
	}, nil
}

// BasePath returns the directory backing the store.
func (s *Store) BasePath() string {
	return s.basePath
}

// Write persists value under key, replacing any previous value.
func (s *Store) Write(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("store write %q: %w", key, err)
	}
	return nil
}

// Read returns the value stored under key. The second return value reports
// whether the key exists.
func (s *Store) Read(key string) ([]byte, bool) {
	value, err := s.d.Read(key)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Erase removes key from the store. Erasing an absent key is not an error.
func (s *Store) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("store erase %q: %w", key, err)
	}
	return nil
}
