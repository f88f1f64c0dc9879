package models

import "maps"

// Record is one product, member or transaction entry. Records are open
// mappings rather than fixed structs so clients may attach extra fields;
// only the fields the services assign (id, status, dates) are interpreted
// server-side.
type Record map[string]any

// ID returns the record id, or the empty string when unset.
func (r Record) ID() string {
	return r.String("id")
}

// String returns the named field as a string, or "" when absent or of
// another type.
func (r Record) String(key string) string {
	v, _ := r[key].(string)
	return v
}

// Bool reports whether the named field is truthy: boolean true, a non-zero
// number (JSON numbers decode as float64) or a non-empty string.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return false
	}
}

// Float returns the named field as a float64, or 0 when absent or
// non-numeric.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	maps.Copy(out, r)
	return out
}

// Merge overlays the supplied fields onto the record, replacing only the
// keys present in updates and leaving everything else untouched.
func (r Record) Merge(updates Record) {
	maps.Copy(r, updates)
}
