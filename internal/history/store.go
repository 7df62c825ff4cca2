// Package history persists the most recent terminal downloads to a JSON
// file, newest first, capped at MaxEntries. A corrupted or missing file
// yields an empty history rather than an error.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ydownloader/internal/model"
	"ydownloader/internal/platform"
)

// MaxEntries bounds the persisted history
const MaxEntries = 5

const historyFileName = "history.json"

type fileSchema struct {
	Version int                  `json:"version"`
	Entries []model.HistoryEntry `json:"entries"`
}

// Store is a persistent FIFO of terminal download snapshots
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by path. An empty path uses the
// default location in the app data directory.
func NewStore(path string) *Store {
	if path == "" {
		if dir, err := platform.AppDataDir(); err == nil {
			path = filepath.Join(dir, historyFileName)
		} else {
			path = historyFileName
		}
	}
	return &Store{path: path}
}

// Record adds an entry at the front, evicting the oldest past MaxEntries.
// Implements the coordinator's HistorySink.
func (s *Store) Record(entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append([]model.HistoryEntry{entry}, s.load()...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return s.save(entries)
}

// Entries returns all entries, most recent first
func (s *Store) Entries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Clear removes all entries
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

func (s *Store) load() []model.HistoryEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		// Corrupted history, start fresh.
		return nil
	}
	return file.Entries
}

// save writes atomically via a temp file rename
func (s *Store) save(entries []model.HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), platform.DefaultDirPermissions); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fileSchema{Version: 1, Entries: entries}, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
