package api

import (
	"context"
	"net/http"
)

// GetCalendarStatus reports whether the user's calendar is connected.
func (g *Gateway) GetCalendarStatus(ctx context.Context) (*CalendarStatus, error) {
	status := &CalendarStatus{}
	if err := g.do(ctx, http.MethodGet, "/calendar/status", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

// SyncCalendar exports the latest meal plan to the connected calendar.
func (g *Gateway) SyncCalendar(ctx context.Context) error {
	return g.do(ctx, http.MethodPost, "/calendar/sync", nil, nil)
}

// DisconnectCalendar revokes the calendar connection.
func (g *Gateway) DisconnectCalendar(ctx context.Context) error {
	return g.do(ctx, http.MethodDelete, "/calendar/disconnect", nil, nil)
}
