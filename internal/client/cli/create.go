package cli

import (
	"context"
	"os"

	"tastebook/internal/client/models"
)

// CreateRecipe walks the user through the create form: title, optional
// description, ingredient rows until an empty name, and multiline
// instructions. Validation happens in the service, in form order; a
// rejected draft is reported and nothing is sent. After a successful
// submit the form state is discarded, so the next create starts empty.
func (a *App) CreateRecipe(ctx context.Context) error {
	draft := models.NewRecipeDraft()

	title, err := getSimpleText(a.reader, "Recipe title", os.Stdout)
	if err != nil {
		return err
	}
	draft.Title = title

	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	draft.Description = description

	printlnFn("Ingredients (empty name to finish):")
	draft.Ingredients = draft.Ingredients[:0]
	for {
		name, err := getSimpleText(a.reader, "Ingredient name", os.Stdout)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		quantity, err := getSimpleText(a.reader, "Quantity", os.Stdout)
		if err != nil {
			return err
		}
		draft.Ingredients = append(draft.Ingredients, models.IngredientDraft{Name: name, Quantity: quantity})
	}

	instructions, err := getMultiline(a.reader, "Instructions", os.Stdout)
	if err != nil {
		return err
	}
	draft.Instructions = instructions

	created, err := a.recipes.Create(ctx, draft)
	if err != nil {
		printlnFn("Could not create recipe:", err.Error())
		return err
	}

	printlnFn("Recipe created:", created.Title)
	return nil
}
