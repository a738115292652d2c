package cli

import (
	"context"
	"fmt"
	"strings"

	"tastebook/internal/client/models"
)

// Browse fetches and prints all recipes, optionally filtered by title. The
// filter is applied by the backend; the client prints what it gets. The
// printed numbers address recipes in the review command.
func (a *App) Browse(ctx context.Context, query string) error {
	recipes, err := a.recipes.List(ctx, query)
	if err != nil {
		printlnFn("Error fetching recipes:", err.Error())
		return err
	}

	a.lastList = recipes

	if len(recipes) == 0 {
		printlnFn("No recipes found")
		return nil
	}

	for i, r := range recipes {
		printlnFn(formatRecipeCard(i+1, r))
	}
	return nil
}

// formatRecipeCard renders one recipe the way the list screen shows it:
// title, description, up to three ingredients with a "+N more" tail, and
// the creation date.
func formatRecipeCard(n int, r models.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d] %s\n", n, r.Title)
	if r.Description != "" {
		fmt.Fprintf(&b, "    %s\n", r.Description)
	}

	if len(r.Ingredients) > 0 {
		shown := r.Ingredients
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts := make([]string, 0, len(shown))
		for _, ing := range shown {
			parts = append(parts, fmt.Sprintf("%s - %s", ing.Name, ing.Quantity))
		}
		fmt.Fprintf(&b, "    Ingredients: %s", strings.Join(parts, ", "))
		if rest := len(r.Ingredients) - len(shown); rest > 0 {
			fmt.Fprintf(&b, " (+%d more)", rest)
		}
		b.WriteString("\n")
	}

	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "    Created: %s", r.CreatedAt.Format("2006-01-02"))
	}

	return strings.TrimRight(b.String(), "\n")
}
