package api

import (
	"context"
	"net/http"
)

type searchRequest struct {
	Query       string   `json:"query"`
	UserProfile *Profile `json:"user_profile"`
	TopK        int      `json:"top_k"`
}

// SearchRecipes runs a recipe search ranked against the user's profile.
func (g *Gateway) SearchRecipes(ctx context.Context, query string, profile *Profile, topK int) ([]Recipe, error) {
	if topK <= 0 {
		topK = 6
	}
	var results []Recipe
	err := g.do(ctx, http.MethodPost, "/search", &searchRequest{
		Query:       query,
		UserProfile: profile,
		TopK:        topK,
	}, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetRecipe fetches a single recipe by id.
func (g *Gateway) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	recipe := &Recipe{}
	if err := g.do(ctx, http.MethodGet, "/recipes/"+id, nil, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}
