// Package api is the single egress point for every call to the FitFork
// service. It decorates outgoing requests with the current session token and
// maps every failure to one classified Error, so no caller ever sees a raw
// transport exception.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

const loginPath = "/auth/login"

// TokenSource supplies the current bearer token, or "" when anonymous.
type TokenSource interface {
	Token() string
}

// Gateway talks to the FitFork service. It holds no session state of its
// own; the token is read from the TokenSource on every request.
//
// Session expiry is a two-step contract: the gateway only classifies the
// failure and notifies registered observers. Cache clearing and navigation
// belong to the watcher wired up at the composition root.
type Gateway struct {
	host   string
	client *http.Client
	tokens TokenSource

	mu        sync.Mutex
	onExpired []func(*Error)
}

// New builds a Gateway against host, reading tokens from tokens.
func New(host string, tokens TokenSource, timeout time.Duration) *Gateway {
	return &Gateway{
		host:   strings.TrimRight(host, "/"),
		client: &http.Client{Timeout: timeout},
		tokens: tokens,
	}
}

// OnSessionExpired registers an observer invoked whenever a request is
// classified as SessionExpired.
func (g *Gateway) OnSessionExpired(fn func(*Error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onExpired = append(g.onExpired, fn)
}

func (g *Gateway) notifyExpired(apiErr *Error) {
	g.mu.Lock()
	observers := make([]func(*Error), len(g.onExpired))
	copy(observers, g.onExpired)
	g.mu.Unlock()
	for _, fn := range observers {
		fn(apiErr)
	}
}

func (g *Gateway) headers(contentType string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", contentType)
	h.Set("X-Request-ID", uuid.NewString())
	if token := g.tokens.Token(); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// do performs a JSON request and decodes the response into out (when
// non-nil). Every failure comes back as *Error.
func (g *Gateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: Unknown, Message: err.Error()}
		}
		reader = bytes.NewReader(raw)
	}
	return g.roundTrip(ctx, method, path, "application/json", reader, out)
}

// doForm performs a form-urlencoded POST. Only login uses this shape.
func (g *Gateway) doForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	body := strings.NewReader(form.Encode())
	return g.roundTrip(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", body, out)
}

func (g *Gateway) roundTrip(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, g.host+path, body)
	if err != nil {
		return &Error{Kind: Unknown, Message: err.Error()}
	}
	req.Header = g.headers(contentType)

	logs.Printv("%s %s", method, path)
	resp, err := g.client.Do(req)
	if err != nil {
		logs.Printv("request failed before a response: %s", err)
		return &Error{Kind: Unreachable, Message: unreachableMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: Unknown, Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := classify(resp.StatusCode, respBody, path == loginPath)
		if apiErr.Kind == SessionExpired {
			g.notifyExpired(apiErr)
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: Unknown, Message: "Invalid response format from server."}
	}
	return nil
}
