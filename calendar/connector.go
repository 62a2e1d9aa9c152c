package calendar

import (
	"context"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

// Connector drives the calendar connection flow against the gateway.
type Connector struct {
	gateway *api.Gateway
}

// NewConnector builds a Connector.
func NewConnector(gateway *api.Gateway) *Connector {
	return &Connector{gateway: gateway}
}

// Connect fetches the authorization URL and hands it to the system browser.
// The URL is returned either way so the caller can print it when the browser
// cannot be launched.
func (c *Connector) Connect(ctx context.Context) (string, error) {
	authURL, err := c.gateway.GoogleAuthURL(ctx)
	if err != nil {
		return "", err
	}
	if err := OpenBrowser(authURL); err != nil {
		logs.Printv("browser launch failed: %s", err)
	}
	return authURL, nil
}

// Status reports the current calendar connection.
func (c *Connector) Status(ctx context.Context) (*api.CalendarStatus, error) {
	return c.gateway.GetCalendarStatus(ctx)
}

// Sync exports the latest meal plan to the connected calendar.
func (c *Connector) Sync(ctx context.Context) error {
	return c.gateway.SyncCalendar(ctx)
}

// Disconnect revokes the calendar connection.
func (c *Connector) Disconnect(ctx context.Context) error {
	return c.gateway.DisconnectCalendar(ctx)
}
