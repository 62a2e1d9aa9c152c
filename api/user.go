package api

import (
	"context"
	"net/http"
)

// Me fetches the authenticated user's identity.
func (g *Gateway) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := g.do(ctx, http.MethodGet, "/user/me", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SavedProfile is the server-persisted profile and its computed targets.
// Either part may be absent for a user who has not completed onboarding.
type SavedProfile struct {
	Profile   *Profile          `json:"profile"`
	Nutrition *NutritionTargets `json:"nutrition"`
}

// GetSavedProfile fetches the profile and nutrition targets stored
// server-side for the authenticated user.
func (g *Gateway) GetSavedProfile(ctx context.Context) (*SavedProfile, error) {
	saved := &SavedProfile{}
	if err := g.do(ctx, http.MethodGet, "/user/profile", nil, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// ComputeNutrition submits a profile and returns the targets the server
// derives from it. The client never runs these formulas itself.
func (g *Gateway) ComputeNutrition(ctx context.Context, profile *Profile) (*NutritionTargets, error) {
	targets := &NutritionTargets{}
	if err := g.do(ctx, http.MethodPost, "/user/nutrition", profile, targets); err != nil {
		return nil, err
	}
	return targets, nil
}
