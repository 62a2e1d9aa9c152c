package api

import (
	"context"
	"net/http"
)

type mealPlanRequest struct {
	UserProfile *Profile `json:"user_profile"`
	Days        int      `json:"days"`
	MealsPerDay int      `json:"meals_per_day"`
}

// GenerateMealPlan asks the server for a fresh plan matched to the profile.
func (g *Gateway) GenerateMealPlan(ctx context.Context, profile *Profile, days, mealsPerDay int) (*MealPlan, error) {
	if days <= 0 {
		days = 7
	}
	if mealsPerDay <= 0 {
		mealsPerDay = 3
	}
	plan := &MealPlan{}
	err := g.do(ctx, http.MethodPost, "/meal-plan", &mealPlanRequest{
		UserProfile: profile,
		Days:        days,
		MealsPerDay: mealsPerDay,
	}, plan)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// LatestMealPlan fetches the most recently generated plan. Returns nil with
// no error when the user has never generated one (the server sends null).
func (g *Gateway) LatestMealPlan(ctx context.Context) (*MealPlan, error) {
	var plan *MealPlan
	if err := g.do(ctx, http.MethodGet, "/meal-plan/latest", nil, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}
