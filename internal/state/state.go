// Package state persists preflight results across sf-preflight runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Avinava/sf-preflight/internal/derrors"
)

// State is the persisted preflight record. It is written only by the health
// check orchestrator and the startup policy.
type State struct {
	EnvCheckPassed        bool  `json:"env_check_passed"`
	EnvCheckTimestampMS   int64 `json:"env_check_timestamp_ms"`
	EnvCheckCompletedOnce bool  `json:"env_check_completed_once"`
	PackagesChecked       bool  `json:"packages_checked"`
	PluginsChecked        bool  `json:"plugins_checked"`
}

// Store manages the persisted state file
type Store struct {
	path string
	mu   sync.RWMutex
	data State
}

// New creates a store backed by the given file, loading existing state if
// present
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, derrors.NewStateError(path, "failed to create state directory", err)
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, derrors.NewStateError(path, "failed to load state", err)
	}

	return s, nil
}

// Get returns a copy of the current state
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Update applies fn to the state and persists the result
func (s *Store) Update(fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.data)
	return s.persist()
}

// MarkPassed records a fully clean check at the given time
func (s *Store) MarkPassed(now time.Time) error {
	return s.Update(func(st *State) {
		st.EnvCheckPassed = true
		st.EnvCheckTimestampMS = now.UnixMilli()
		st.EnvCheckCompletedOnce = true
	})
}

// MarkFailed records a completed check that did not pass
func (s *Store) MarkFailed(now time.Time) error {
	return s.Update(func(st *State) {
		st.EnvCheckPassed = false
		st.EnvCheckTimestampMS = now.UnixMilli()
		st.EnvCheckCompletedOnce = true
	})
}

// IsFresh reports whether the last check passed within the freshness window
func (s *Store) IsFresh(now time.Time, window time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.data.EnvCheckPassed || s.data.EnvCheckTimestampMS == 0 {
		return false
	}
	last := time.UnixMilli(s.data.EnvCheckTimestampMS)
	return now.Sub(last) < window
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
