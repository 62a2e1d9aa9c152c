package api

import (
	"context"
	"net/http"
)

// Health pings the service.
func (g *Gateway) Health(ctx context.Context) error {
	return g.do(ctx, http.MethodGet, "/health", nil, nil)
}
