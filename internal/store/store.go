// Package store persists job records as an ordered JSON array in a single
// file. The format stays an open field mapping with no schema migration;
// unknown fields written by other tools survive a load/append cycle only for
// the fields this process knows about.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/jobsift/jobsift/internal/job"
)

// FileStore reads and writes a JSON array of records. The process is assumed
// single-writer; the file lock guards against a second process invocation
// racing a write.
type FileStore struct {
	Path string
	mu   sync.Mutex
}

// Load returns all stored records in order. A missing file is an empty
// store, not an error.
func (s *FileStore) Load() ([]job.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]job.Record, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []job.Record{}, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	var records []job.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	return records, nil
}

// Append adds one record and persists immediately. The write goes through a
// temp file and rename so a crash never leaves a half-written store, and a
// flock serializes writers across processes.
func (s *FileStore) Append(rec job.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lock := flock.New(s.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	defer lock.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, rec)

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".jobs-*.json")
	if err != nil {
		return fmt.Errorf("temp store: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
