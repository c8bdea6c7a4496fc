package config

import "sort"

// Well-known setting keys.
const (
	KeyLOVDPath       = "lovd_path"
	KeyGeneList       = "gene_list"
	KeyTranscriptList = "transcript_list"
)

// Store is the Configuration Store: a mutable mapping from setting key to
// its current value.
//
// A Store is owned by a single goroutine. It is not safe for concurrent use;
// settings are requested strictly one after another.
type Store struct {
	values map[string]Value
}

// NewStore creates a store initialised with a copy of defaults.
func NewStore(defaults map[string]Value) *Store {
	values := make(map[string]Value, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}
	return &Store{values: values}
}

// Get returns the value stored for key and whether one is present.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Default returns the value for key that is offered to the user as the
// bracketed default, or an empty string when there is none.
func (s *Store) Default(key string) string {
	v, ok := s.values[key]
	if !ok || v.Empty() {
		return ""
	}
	return v.String()
}

// Commit replaces the value for key. Only values that passed verification
// may be committed.
func (s *Store) Commit(key string, v Value) {
	s.values[key] = v
}

// String returns the string form of the value for key.
func (s *Store) String(key string) string {
	return s.values[key].String()
}

// Keys returns all keys in the store in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
