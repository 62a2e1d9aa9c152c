package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/cache"
	"github.com/Hashim-Bhagad/FitFork/session"
)

type testEnv struct {
	store  *session.Store
	ctrl   *Controller
	routes map[string]http.HandlerFunc
	hits   map[string]int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	env := &testEnv{
		routes: map[string]http.HandlerFunc{},
		hits:   map[string]int{},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hits[r.URL.Path]++
		if handler, ok := env.routes[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	gateway := api.New(server.URL, c, 5*time.Second)
	env.store = session.NewStore(c)
	env.ctrl = NewController(gateway, env.store)
	return env
}

func TestLoadHistorySeedsWelcomeWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	turns := env.ctrl.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, RoleAssistant, turns[0].Role)
	assert.Equal(t, welcomeMessage, turns[0].Content)
	assert.Equal(t, Active, env.ctrl.State())
	assert.Zero(t, env.hits["/chat/send"], "seeding the welcome turn writes nothing")
}

func TestLoadHistoryResumesExistingTurns(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/history"] = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"role":"assistant","content":"Welcome back!"},{"role":"user","content":"hi"}]`))
	}

	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	turns := env.ctrl.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "Welcome back!", turns[0].Content)
}

func TestSendAppendsBothTurns(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/send"] = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply":"Great, anything else?","is_complete":false,"suggested_actions":["More protein","Less sugar"]}`))
	}
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	require.NoError(t, env.ctrl.Send(context.Background(), "I want high protein meals"))

	turns := env.ctrl.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, RoleUser, turns[1].Role)
	assert.Equal(t, "I want high protein meals", turns[1].Content)
	assert.Equal(t, RoleAssistant, turns[2].Role)
	assert.Equal(t, "Great, anything else?", turns[2].Content)
	assert.Equal(t, []string{"More protein", "Less sugar"}, turns[2].Suggestions)
	assert.False(t, env.ctrl.IsComplete())
	assert.Equal(t, Active, env.ctrl.State())
}

func TestSendUpdatesCompletionFlag(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/send"] = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply":"Your plan is ready!","is_complete":true}`))
	}
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	require.NoError(t, env.ctrl.Send(context.Background(), "that's everything"))
	assert.True(t, env.ctrl.IsComplete())
}

func TestSendBlankMessageIsANoOp(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	require.NoError(t, env.ctrl.Send(context.Background(), "   "))

	assert.Len(t, env.ctrl.Turns(), 1)
	assert.Zero(t, env.hits["/chat/send"])
}

func TestSendWhileAwaitingReplyIsANoOp(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))
	env.ctrl.state = AwaitingReply

	require.NoError(t, env.ctrl.Send(context.Background(), "impatient follow-up"))

	assert.Len(t, env.ctrl.Turns(), 1)
	assert.Zero(t, env.hits["/chat/send"])
}

func TestSendFailureAppendsFallbackTurn(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/send"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	err := env.ctrl.Send(context.Background(), "hello?")

	require.NoError(t, err, "chat errors stay inside the conversation")
	turns := env.ctrl.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, fallbackMessage, turns[2].Content)
	assert.Equal(t, Active, env.ctrl.State())
}

func TestReplyAfterSessionChangeIsDiscarded(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/send"] = func(w http.ResponseWriter, r *http.Request) {
		// The session dies while the reply is in flight.
		env.store.Invalidate()
		w.Write([]byte(`{"reply":"too late","is_complete":true}`))
	}
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	require.NoError(t, env.ctrl.Send(context.Background(), "still there?"))

	turns := env.ctrl.Turns()
	require.Len(t, turns, 2, "the late reply must not be appended")
	assert.Equal(t, RoleUser, turns[1].Role)
	assert.False(t, env.ctrl.IsComplete())
}

func TestClearRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))

	cleared := env.ctrl.Clear(context.Background(), func() bool { return false })

	assert.False(t, cleared)
	assert.Zero(t, env.hits["/chat/clear"])
	assert.Equal(t, welcomeMessage, env.ctrl.Turns()[0].Content)
}

func TestClearResetsLocallyEvenWhenRemoteFails(t *testing.T) {
	env := newTestEnv(t)
	env.routes["/chat/send"] = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply":"noted","is_complete":true}`))
	}
	env.routes["/chat/clear"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	require.NoError(t, env.ctrl.LoadHistory(context.Background()))
	require.NoError(t, env.ctrl.Send(context.Background(), "remember this"))
	require.True(t, env.ctrl.IsComplete())

	cleared := env.ctrl.Clear(context.Background(), func() bool { return true })

	assert.True(t, cleared)
	turns := env.ctrl.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, resetMessage, turns[0].Content)
	assert.False(t, env.ctrl.IsComplete())
}
