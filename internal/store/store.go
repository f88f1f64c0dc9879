package store

import "blububb/internal/models"

// Document is one persisted collection: a mapping with a single top-level
// field holding an ordered list of records, e.g. {"products": [...]}.
type Document map[string]any

// Store loads and saves whole collection documents. Every caller does a full
// load, an in-memory transform and a full save; there is no partial update
// and the last writer wins.
type Store interface {
	Load(name string) (Document, error)
	Save(name string, doc Document) error
}

// Records returns the record list stored under key, in insertion order.
// Items that are not JSON objects are skipped.
func (d Document) Records(key string) []models.Record {
	list, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]models.Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, models.Record(m))
		}
	}
	return out
}

// SetRecords replaces the record list stored under key.
func (d Document) SetRecords(key string, records []models.Record) {
	list := make([]any, len(records))
	for i, r := range records {
		list[i] = map[string]any(r)
	}
	d[key] = list
}

// Int returns the named field as an int, or 0 when absent or non-numeric.
// JSON numbers decode as float64.
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
