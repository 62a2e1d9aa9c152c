package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newGateway(t *testing.T, tokens TokenSource, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, tokens, 5*time.Second)
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var got string
	g := newGateway(t, staticTokens("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, g.Health(context.Background()))
	assert.Equal(t, "Bearer tok-1", got)
}

func TestNoBearerTokenWhenAnonymous(t *testing.T) {
	var got string
	g := newGateway(t, staticTokens(""), func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, g.Health(context.Background()))
	assert.Empty(t, got)
}

func TestLoginIsFormEncoded(t *testing.T) {
	g := newGateway(t, staticTokens(""), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "a@b.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		w.Write([]byte(`{"access_token":"tok-2","token_type":"bearer"}`))
	})

	token, err := g.Login(context.Background(), "a@b.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestNoResponseClassifiesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	g := New(server.URL, staticTokens(""), time.Second)

	err := g.Health(context.Background())
	assert.True(t, IsKind(err, Unreachable))
	assert.Contains(t, err.Error(), "Cannot connect")
}

func TestLoginUnauthorizedDoesNotNotifyExpiry(t *testing.T) {
	g := newGateway(t, staticTokens(""), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	fired := 0
	g.OnSessionExpired(func(*Error) { fired++ })

	_, err := g.Login(context.Background(), "a@b.com", "wrong")
	assert.True(t, IsKind(err, InvalidCredentials))
	assert.Zero(t, fired)
}

func TestOtherUnauthorizedNotifiesExpiryOnce(t *testing.T) {
	g := newGateway(t, staticTokens("stale"), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	fired := 0
	g.OnSessionExpired(func(e *Error) {
		fired++
		assert.Equal(t, SessionExpired, e.Kind)
	})

	_, err := g.Me(context.Background())
	assert.True(t, IsKind(err, SessionExpired))
	assert.Equal(t, 1, fired)
}

func TestLatestMealPlanNullMeansNoPlan(t *testing.T) {
	g := newGateway(t, staticTokens("tok"), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	plan, err := g.LatestMealPlan(context.Background())
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestChatSendCarriesUserAndProfile(t *testing.T) {
	g := newGateway(t, staticTokens("tok"), func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"reply":"Great, anything else?","is_complete":false}`))
	})

	reply, err := g.ChatSend(context.Background(), "I want high protein meals", "u1", &Profile{HeightCm: 180})
	require.NoError(t, err)
	assert.Equal(t, "Great, anything else?", reply.Reply)
	assert.False(t, reply.IsComplete)
}
