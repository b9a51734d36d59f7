// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"slices"
	"sync/atomic"
)

// instance is the process-wide store slot. It transitions nil → populated
// exactly once via CompareAndSwap, which also acts as the publication barrier:
// every reader that observes a non-nil pointer observes a fully built store.
var instance atomic.Pointer[Store]

// Store holds the resolved environment snapshot and the configured prefixes.
// A Store is immutable after construction; it is safe for concurrent use
// without additional synchronization.
//
// A Store is normally built once by [InitBuilder.Init] and published into
// process-wide state, but can also be constructed directly with [FromMap] or
// [FromMapWithPrefixes] so tests can use isolated instances.
type Store struct {
	entries  map[string]string
	prefixes []string
}

// Entry is a single key-value pair from the store.
type Entry struct {
	Key   string
	Value string
}

// FromMap creates a Store directly from a map of key-value pairs.
//
// Intended for testing: the returned store is independent of the
// process-wide slot, so every test can have its own isolated instance.
func FromMap(entries map[string]string) *Store {
	return &Store{entries: entries}
}

// FromMapWithPrefixes is [FromMap] with prefix configuration, useful for
// testing prefix-related lookup logic. Keys in entries are expected to carry
// their full, unshortened names.
func FromMapWithPrefixes(entries map[string]string, prefixes []string) *Store {
	return &Store{entries: entries, prefixes: slices.Clone(prefixes)}
}

func getInstance() (*Store, error) {
	s := instance.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}
	return s, nil
}

// lookup resolves a key against the snapshot. preferredPrefix may be empty.
//
// With no prefixes configured the key is looked up directly. With prefixes
// configured the full key is reconstructed by prepending either the preferred
// prefix or, when exactly one prefix is configured, that prefix. With two or
// more prefixes and no preference the key cannot be resolved.
func (s *Store) lookup(key string, preferredPrefix string) (string, bool) {
	if len(s.prefixes) == 0 {
		v, ok := s.entries[key]
		return v, ok
	}

	if preferredPrefix != "" {
		v, ok := s.entries[preferredPrefix+key]
		return v, ok
	}

	if len(s.prefixes) == 1 {
		v, ok := s.entries[s.prefixes[0]+key]
		return v, ok
	}

	// Multiple prefixes without an explicit choice — cannot resolve.
	return "", false
}

// Prefixes returns the configured prefixes in configuration order.
func (s *Store) Prefixes() []string {
	return slices.Clone(s.prefixes)
}

// Entries returns every key-value pair in the store, in no particular order.
//
// The dump may include secrets (tokens, DSNs, keys); callers that log or
// display it are responsible for redaction.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for k, v := range s.entries {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries
}

// Query starts a query against this store instead of the process-wide one.
func (s *Store) Query(name string) *KeyQuery {
	return &KeyQuery{store: s, name: name}
}
