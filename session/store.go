// Package session owns the authenticated session: the token lifecycle, the
// in-memory view of the user's identity, profile and nutrition targets, and
// the mirror of all of that in the persistent cache. It is the sole writer
// of the cache's session slots.
package session

import (
	"sync"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/cache"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

// State is the session lifecycle state.
type State int

const (
	// Anonymous means no token is held.
	Anonymous State = iota
	// Authenticating means a login or register flow is in flight.
	Authenticating
	// Authenticated means a token and user identity are present.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Identity is the signed-in user as the client knows them.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Store holds the process-wide session state. One instance is created at
// startup and injected into everything that needs it.
//
// The epoch counter increments on every transition into or out of an
// authenticated session. In-flight responses capture the epoch they were
// issued under and are discarded when it no longer matches, so a slow
// response can never overwrite state established by a later action.
type Store struct {
	mu        sync.Mutex
	cache     *cache.Store
	state     State
	epoch     uint64
	user      *Identity
	profile   *api.Profile
	nutrition *api.NutritionTargets
	loading   bool
}

// NewStore builds a Store backed by c and hydrates it from the cache, so a
// fresh process resumes the previous session without a network round trip.
func NewStore(c *cache.Store) *Store {
	s := &Store{cache: c}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.cache.Token() == "" {
		return
	}
	user := &Identity{}
	if !s.cache.GetJSON(cache.SlotUser, user) {
		return
	}
	s.state = Authenticated
	s.user = user

	profile := &api.Profile{}
	if s.cache.GetJSON(cache.SlotProfile, profile) {
		s.profile = profile
	}
	nutrition := &api.NutritionTargets{}
	if s.cache.GetJSON(cache.SlotNutrition, nutrition) {
		s.nutrition = nutrition
	}
	logs.Printv("session restored from cache for %s", user.Email)
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated identity, or nil when anonymous.
func (s *Store) User() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Profile returns the cached profile, or nil when none has been saved.
func (s *Store) Profile() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Nutrition returns the cached nutrition targets, or nil.
func (s *Store) Nutrition() *api.NutritionTargets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nutrition
}

// Loading reports whether a login or register flow is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Epoch returns the current session epoch. Callers issuing a request capture
// it and compare before applying the response.
func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// SetProfile updates the profile in memory and in the cache together.
func (s *Store) SetProfile(p *api.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.cache.Set(cache.SlotProfile, p)
}

// SetNutrition updates the nutrition targets in memory and in the cache
// together.
func (s *Store) SetNutrition(n *api.NutritionTargets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nutrition = n
	s.cache.Set(cache.SlotNutrition, n)
}

// MarkVisited records the has-visited marker. Like every session slot it is
// cleared on logout.
func (s *Store) MarkVisited() {
	s.cache.Set(cache.SlotVisited, true)
}

// Logout drops the session: every cache slot is cleared and in-memory state
// is reset, atomically with respect to readers. Idempotent; logging out
// while anonymous is a no-op.
func (s *Store) Logout() {
	s.Invalidate()
}

// Invalidate performs the logout transition. It is also the entry point the
// expiry watcher uses when the server reports the session dead.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = Anonymous
	s.user = nil
	s.profile = nil
	s.nutrition = nil
	s.loading = false
	s.cache.ClearAll()
}

// beginAuth moves the store into Authenticating and returns the epoch the
// flow was issued under.
func (s *Store) beginAuth() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Authenticating
	s.loading = true
	return s.epoch
}

// persistToken writes the freshly issued token so the remaining flow steps
// can attach it. Reports false when the session transitioned underneath the
// flow, in which case nothing is written.
func (s *Store) persistToken(epoch uint64, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.cache.Set(cache.SlotToken, token)
	return true
}

// completeAuth finishes the flow: the store becomes Authenticated with
// whatever identity, profile and targets the flow obtained, and everything
// is mirrored to the cache in one step. A stale epoch means a logout or
// expiry won the race; the result is discarded and false returned.
func (s *Store) completeAuth(epoch uint64, user *Identity, profile *api.Profile, nutrition *api.NutritionTargets) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		logs.Printv("discarding stale login result for %s", user.Email)
		return false
	}
	s.epoch++
	s.state = Authenticated
	s.user = user
	s.profile = profile
	s.nutrition = nutrition
	s.loading = false

	s.cache.Set(cache.SlotUser, user)
	if profile != nil {
		s.cache.Set(cache.SlotProfile, profile)
	}
	if nutrition != nil {
		s.cache.Set(cache.SlotNutrition, nutrition)
	}
	s.cache.Set(cache.SlotVisited, true)
	return true
}

// failAuth returns the store to Anonymous after a failed authentication
// call. The cache is left untouched: a bad password must never wipe state.
func (s *Store) failAuth(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.state = Anonymous
	s.loading = false
}
