package cli

import "context"

// MyRecipes prints the recipes owned by the current user, or an empty-state
// message once the fetch has resolved with nothing. The message never shows
// before the response arrives: the call is synchronous, so "still loading"
// and "empty" cannot be confused here.
func (a *App) MyRecipes(ctx context.Context) error {
	recipes, err := a.recipes.ListOwn(ctx)
	if err != nil {
		printlnFn("Error fetching your recipes:", err.Error())
		return err
	}

	if len(recipes) == 0 {
		printlnFn("You don't have any recipes yet")
		return nil
	}

	printlnFn("My recipes:")
	for i, r := range recipes {
		printlnFn(formatRecipeCard(i+1, r))
	}
	return nil
}
