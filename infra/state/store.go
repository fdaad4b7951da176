// Package state persists small bits of UI state (mute preference, last
// watched item) across sessions in a bolt database. Likes and comments
// are deliberately session-only and never stored here.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketUI = []byte("ui_state")

var keyUI = []byte("current")

// UIState is the persisted slice of viewer preferences.
type UIState struct {
	Muted      bool   `json:"muted"`
	LastItemID string `json:"last_item_id"`
}

// Store wraps the bolt database. A Store created without a path keeps
// state in memory only.
type Store struct {
	db *bolt.DB

	mu  sync.Mutex
	mem UIState
}

// NewStore opens (or creates) the database at path. Empty path returns
// a memory-only store.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return &Store{mem: UIState{Muted: true}}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketUI)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// LoadUIState returns the persisted state, or sensible defaults (muted)
// when nothing was saved yet.
func (s *Store) LoadUIState() (UIState, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.mem, nil
	}
	out := UIState{Muted: true}
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketUI).Get(keyUI)
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &out)
	})
	if err != nil {
		return UIState{Muted: true}, err
	}
	return out, nil
}

// SaveUIState persists the state.
func (s *Store) SaveUIState(st UIState) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.mem = st
		return nil
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUI).Put(keyUI, raw)
	})
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
