package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"tastebook/internal/client/services"
)

// Review runs the review workflow for one recipe from the last listing:
// fetch the user's existing review to pick edit vs create mode, then prompt
// for a rating, a delete, or a cancel. A failed submit keeps the workflow
// open with its state intact; cancel discards it.
func (a *App) Review(ctx context.Context, arg string) error {
	recipe, err := a.pickRecipe(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	form, err := a.reviews.Open(ctx, recipe.ID)
	if err != nil {
		printlnFn("Error fetching reviews:", err.Error())
		return err
	}

	if form.Mode == services.ReviewModeEdit {
		printlnFn(fmt.Sprintf("Editing your review of %q (current rating: %d)", recipe.Title, form.Rating))
	} else {
		printlnFn(fmt.Sprintf("New review for %q (default rating: %d)", recipe.Title, form.Rating))
	}

	for {
		answer, err := getSimpleText(a.reader, "Rating 1-5 (d = delete, c = cancel)", os.Stdout)
		if err != nil {
			return err
		}

		switch answer {
		case "c", "":
			printlnFn("Review cancelled.")
			return nil

		case "d":
			if form.Mode != services.ReviewModeEdit {
				printlnFn("Nothing to delete: you have not reviewed this recipe yet.")
				continue
			}
			ok, err := confirm(a.reader, "Delete your review?", os.Stdout)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := a.reviews.Delete(ctx, form); err != nil {
				printlnFn("Error deleting review:", err.Error())
				return err
			}
			printlnFn("Review deleted.")
			return nil

		default:
			rating, convErr := strconv.Atoi(answer)
			if convErr != nil {
				printlnFn("Please enter a number from 1 to 5, d or c.")
				continue
			}
			if err := a.reviews.Submit(ctx, form, rating); err != nil {
				printlnFn("Error saving review:", err.Error())
				continue
			}
			printlnFn("Review saved.")
			return nil
		}
	}
}

// pickRecipe resolves "review <n>" against the last browse result.
func (a *App) pickRecipe(arg string) (recipe recipeRef, err error) {
	if len(a.lastList) == 0 {
		return recipeRef{}, fmt.Errorf("no recipes listed yet: run 'list' first")
	}
	n, convErr := strconv.Atoi(arg)
	if convErr != nil || n < 1 || n > len(a.lastList) {
		return recipeRef{}, fmt.Errorf("usage: review <n> with n from the last listing (1-%d)", len(a.lastList))
	}
	r := a.lastList[n-1]
	return recipeRef{ID: r.ID, Title: r.Title}, nil
}

// recipeRef is the slice of a recipe the review workflow needs.
type recipeRef struct {
	ID    string
	Title string
}
