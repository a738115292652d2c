package services

import (
	"context"
	"fmt"
	"strings"

	"tastebook/internal/client/api"
	"tastebook/internal/client/models"
	"tastebook/internal/client/session"
	"tastebook/internal/common"
	"tastebook/internal/logging"
)

// RecipeService covers the browse, my-recipes and create screens. Each call
// re-fetches from the backend; no local cache is maintained.
type RecipeService interface {
	// List returns all recipes, optionally filtered by title. The filter is
	// applied entirely by the backend.
	List(ctx context.Context, titleFilter string) ([]models.Recipe, error)

	// ListOwn returns the recipes owned by the current session's user.
	ListOwn(ctx context.Context) ([]models.Recipe, error)

	// Create validates draft locally and submits it. Validation order:
	// title, then instructions, then ingredients. Any failure aborts with an
	// api.ValidationError before any network call.
	Create(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error)
}

type recipeService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger
}

func NewRecipeService(client api.Client, sessions session.Store, log logging.Logger) RecipeService {
	return &recipeService{client: client, sessions: sessions, log: log}
}

func (s *recipeService) List(ctx context.Context, titleFilter string) ([]models.Recipe, error) {
	recipes, err := s.client.ListRecipes(ctx, strings.TrimSpace(titleFilter))
	if err != nil {
		return nil, fmt.Errorf("fetching recipes: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) ListOwn(ctx context.Context) ([]models.Recipe, error) {
	sess := s.sessions.Current()
	if sess.IsAnonymous() {
		return nil, common.ErrNoSession
	}

	recipes, err := s.client.ListUserRecipes(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching own recipes: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) Create(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error) {
	sess := s.sessions.Current()
	if sess.IsAnonymous() {
		return nil, common.ErrNoSession
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, &api.ValidationError{Message: "recipe title is required"}
	}

	instructions := strings.TrimSpace(draft.Instructions)
	if instructions == "" {
		return nil, &api.ValidationError{Message: "recipe instructions are required"}
	}

	ingredients := draft.CompleteIngredients()
	if len(ingredients) == 0 {
		return nil, &api.ValidationError{Message: "at least one ingredient with name and quantity is required"}
	}

	req := api.CreateRecipeRequest{
		Title:        title,
		Description:  strings.TrimSpace(draft.Description),
		Instructions: instructions,
		Ingredients:  ingredients,
		UserID:       sess.UserID,
	}

	created, err := s.client.CreateRecipe(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	s.log.Info(ctx, "recipe created", "recipe_id", created.ID)
	return created, nil
}
