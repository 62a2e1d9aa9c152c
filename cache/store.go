// Package cache is a durable, file-backed key/value store for session data.
// It survives process restarts so the client does not have to re-fetch the
// session on every launch. It is a cache, not a trust boundary: values are
// plain JSON on disk and a missing or corrupt file simply means "empty".
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Atrox/homedir"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

// Slot names. Every piece of session state the client persists lives in one
// of these; ClearAll enumerates them explicitly so "clear everything" stays
// exhaustive as slots are added.
const (
	SlotToken     = "token"
	SlotUser      = "user"
	SlotProfile   = "profile"
	SlotNutrition = "nutrition"
	SlotVisited   = "visited"
)

var allSlots = []string{SlotToken, SlotUser, SlotProfile, SlotNutrition, SlotVisited}

// DefaultPath is where the cache file lives unless overridden.
const DefaultPath = "~/.fitfork/cache.json"

// Store is the persistent cache. All operations are synchronous; writes go
// through to disk before returning.
type Store struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

// Open loads the cache at path, expanding a leading "~". An absent or
// unreadable file yields an empty cache, never an error surfaced to callers
// of Get/Set.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: expanded, entries: map[string]json.RawMessage{}}
	s.load()
	return s, nil
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		logs.Printv("cache file \"%s\" not loaded: %s", s.path, err)
		return
	}
	if err := json.Unmarshal(raw, &s.entries); err != nil {
		logs.Printv("cache file \"%s\" is corrupt, starting empty", s.path)
		s.entries = map[string]json.RawMessage{}
	}
}

// Get returns the raw value stored in a slot. A missing slot is simply
// absent, never an error.
func (s *Store) Get(slot string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.entries[slot]
	return raw, ok
}

// GetJSON unmarshals a slot into v, reporting whether the slot was present
// and well-formed.
func (s *Store) GetJSON(slot string, v interface{}) bool {
	raw, ok := s.Get(slot)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Set stores a value in a slot and flushes to disk.
func (s *Store) Set(slot string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		logs.Printv("cache: cannot marshal value for slot %s: %s", slot, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[slot] = raw
	s.flush()
}

// Clear removes a single slot.
func (s *Store) Clear(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, slot)
	s.flush()
}

// ClearAll removes every defined slot. Logout depends on this being
// exhaustive: no slot may survive.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range allSlots {
		delete(s.entries, slot)
	}
	s.flush()
}

// Token returns the stored session token, or "" when absent. Satisfies the
// gateway's token source.
func (s *Store) Token() string {
	var token string
	if !s.GetJSON(SlotToken, &token) {
		return ""
	}
	return token
}

// flush writes the cache to disk. Callers hold s.mu. A failed write keeps
// the in-memory state; the cache degrades to session-only.
func (s *Store) flush() {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		logs.Printv("cache: marshal failed: %s", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		logs.Printv("cache: cannot create directory for \"%s\": %s", s.path, err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		logs.Printv("cache: write to \"%s\" failed: %s", s.path, err)
	}
}
