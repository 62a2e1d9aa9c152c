// Package calendar implements the client side of the calendar OAuth
// contract: obtaining the authorization URL, handing it to the system
// browser, and interpreting the redirect-return URL.
package calendar

import (
	"net/url"
)

// Query parameter the service appends to the return URL after OAuth.
const (
	callbackParam = "calendar"
	detailParam   = "detail"

	callbackConnected = "connected"
	callbackError     = "error"
)

// Notice is the one-time outcome carried on a redirect-return URL.
type Notice struct {
	Connected bool
	Detail    string
}

// ParseCallback inspects a return URL for the calendar outcome parameter.
// It returns the notice (nil when the parameter is absent) and the URL with
// the outcome parameters stripped, so the notice cannot fire twice.
func ParseCallback(raw string) (*Notice, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, raw, err
	}
	q := u.Query()
	outcome := q.Get(callbackParam)
	if outcome == "" {
		return nil, raw, nil
	}

	notice := &Notice{
		Connected: outcome == callbackConnected,
		Detail:    q.Get(detailParam),
	}
	q.Del(callbackParam)
	q.Del(detailParam)
	u.RawQuery = q.Encode()
	return notice, u.String(), nil
}
