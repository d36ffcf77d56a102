package service

import (
	"context"
	"strings"
	"sync"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/models"
)

// maxSuggestions caps how many recipes are exposed per request,
// regardless of how many the backend returns.
const maxSuggestions = 3

// RecipeMatcher requests recipe suggestions for the current inventory.
// Results are ephemeral: each request replaces the previous set.
type RecipeMatcher struct {
	client api.Client
	inv    *Inventory

	mu      sync.Mutex
	recipes []models.Recipe
}

func NewRecipeMatcher(client api.Client, inv *Inventory) *RecipeMatcher {
	return &RecipeMatcher{client: client, inv: inv}
}

func (r *RecipeMatcher) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes = nil
}

// Suggest joins the current item names into one ingredient query and
// keeps at most the first three results in the order the backend
// returned them. An empty inventory still issues the call (an empty
// ingredient string is valid input) and an empty result set means
// "no suggestions", not an error.
func (r *RecipeMatcher) Suggest(ctx context.Context) ([]models.Recipe, error) {
	items := r.inv.Items()
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}

	recipes, err := r.client.Recipes(ctx, strings.Join(names, ","))
	if err != nil {
		return nil, err
	}
	if len(recipes) > maxSuggestions {
		recipes = recipes[:maxSuggestions]
	}

	r.mu.Lock()
	r.recipes = recipes
	r.mu.Unlock()
	return append([]models.Recipe(nil), recipes...), nil
}

// Suggestions returns the last fetched result set.
func (r *RecipeMatcher) Suggestions() []models.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Recipe(nil), r.recipes...)
}
