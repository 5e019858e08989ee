package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/internal/writer"
)

// IndexStore holds the full object index: one record per placed
// graphic, keyed by UID. Reads and writes are whole-document; the
// engine always loads everything, mutates in memory, and rewrites.
type IndexStore interface {
	// GetAll returns every record. A store that has never been written
	// returns an empty map, not an error.
	GetAll() (map[string]*atlas.Record, error)

	// PutAll replaces the entire index.
	PutAll(map[string]*atlas.Record) error
}

// FileIndexStore persists the object index as a single JSON document.
type FileIndexStore struct {
	// Path is the location of the JSON index file.
	Path string
}

// NewFileIndexStore returns a file-backed index store at path.
func NewFileIndexStore(path string) *FileIndexStore {
	return &FileIndexStore{Path: path}
}

// GetAll reads and decodes the whole index. A missing file is an empty
// index; a malformed file is an error so callers fail closed.
func (s *FileIndexStore) GetAll() (map[string]*atlas.Record, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return map[string]*atlas.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read index %s: %w", s.Path, err)
	}
	records := map[string]*atlas.Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("store: decode index %s: %w", s.Path, err)
	}
	for uid, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("store: decode index %s: null record %q", s.Path, uid)
		}
		rec.UID = uid
	}
	return records, nil
}

// PutAll rewrites the whole index atomically.
func (s *FileIndexStore) PutAll(records map[string]*atlas.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode index: %w", err)
	}
	if err := writer.WriteFile(s.Path, data); err != nil {
		return fmt.Errorf("store: write index %s: %w", s.Path, err)
	}
	return nil
}
