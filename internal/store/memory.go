package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory implementation of Store. Documents are copied
// through a JSON round-trip on the way in and out, so callers see the same
// value types (map[string]any, float64) as with the file backend.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

// Load returns a copy of the named collection document, or an empty document
// when the collection has never been saved.
func (s *MemoryStore) Load(name string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.docs[name]
	if !ok {
		return Document{}, nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return doc, nil
}

// Save stores a serialized copy of the document, detaching it from the
// caller's maps.
func (s *MemoryStore) Save(name string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = raw
	return nil
}
