package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps the document in a single JSON file. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn document.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the document file at path. The parent
// directory is created if missing; failure to create it just surfaces
// later as Available() == false.
func NewFileStore(path string) *FileStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &FileStore{path: path}
}

// Path returns the document file path (the watcher needs it).
func (s *FileStore) Path() string {
	return s.path
}

// Available probes the directory with a trial write and delete.
func (s *FileStore) Available() bool {
	probe := filepath.Join(filepath.Dir(s.path), ".roster-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		return false
	}
	return os.Remove(probe) == nil
}

// Read returns the file's content, or ok=false when the file is missing,
// unreadable, or not valid JSON.
func (s *FileStore) Read() ([]byte, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	if !json.Valid(data) {
		return nil, false
	}
	return data, true
}

// Write replaces the file atomically (write temp + rename).
func (s *FileStore) Write(data []byte) bool {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return false
	}
	return true
}

// Close is a no-op for file-backed storage.
func (s *FileStore) Close() error {
	return nil
}
