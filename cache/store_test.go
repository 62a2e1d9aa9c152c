package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestGetMissingSlotIsAbsent(t *testing.T) {
	s, _ := tempStore(t)

	_, ok := s.Get(SlotToken)
	assert.False(t, ok)
	assert.Equal(t, "", s.Token())
}

func TestSetAndGetRoundTrip(t *testing.T) {
	s, _ := tempStore(t)

	s.Set(SlotToken, "abc123")
	assert.Equal(t, "abc123", s.Token())

	s.Set(SlotVisited, true)
	var visited bool
	assert.True(t, s.GetJSON(SlotVisited, &visited))
	assert.True(t, visited)
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := tempStore(t)
	s.Set(SlotToken, "persist-me")
	s.Set(SlotUser, map[string]string{"id": "u1"})

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "persist-me", reopened.Token())

	var user map[string]string
	require.True(t, reopened.GetJSON(SlotUser, &user))
	assert.Equal(t, "u1", user["id"])
}

func TestClearRemovesSingleSlot(t *testing.T) {
	s, _ := tempStore(t)
	s.Set(SlotToken, "t")
	s.Set(SlotProfile, map[string]int{"age": 30})

	s.Clear(SlotToken)

	_, ok := s.Get(SlotToken)
	assert.False(t, ok)
	_, ok = s.Get(SlotProfile)
	assert.True(t, ok)
}

func TestClearAllRemovesEveryDefinedSlot(t *testing.T) {
	s, path := tempStore(t)
	for _, slot := range allSlots {
		s.Set(slot, "value")
	}

	s.ClearAll()

	for _, slot := range allSlots {
		_, ok := s.Get(slot)
		assert.False(t, ok, "slot %s survived ClearAll", slot)
	}

	// And the clear is durable, not just in-memory.
	reopened, err := Open(path)
	require.NoError(t, err)
	_, ok := reopened.Get(SlotToken)
	assert.False(t, ok)
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get(SlotToken)
	assert.False(t, ok)
}
