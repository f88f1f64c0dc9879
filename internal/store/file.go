package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each collection as a single JSON file under dir.
// Saves rewrite the whole file without locking, so concurrent writers to the
// same collection race and the later save wins. Suitable for small
// collections only.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the collection document from disk. A missing or empty file is
// not an error: the collection is simply empty. An unreadable or corrupt
// file is propagated as an error.
func (s *FileStore) Load(name string) (Document, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if len(raw) == 0 {
		return Document{}, nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return doc, nil
}

// Save serializes the whole document and overwrites the backing file.
// Non-ASCII characters stay literal and output is indented with four spaces
// so the files remain hand-editable.
func (s *FileStore) Save(name string, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}
