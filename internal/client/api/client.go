// Package api implements the request pipeline: one shared HTTP client bound
// to the backend base URL, bearer-token injection on every outbound request,
// and typed decoding of every response.
package api

import (
	"context"

	"tastebook/internal/client/models"
)

// TokenSource exposes the current bearer token to the pipeline. The session
// store implements it; the pipeline only ever reads.
type TokenSource interface {
	Token() string
}

// AuthResult is the outcome of a successful register or login call.
type AuthResult struct {
	Token string      `json:"token" validate:"required"`
	User  models.User `json:"user"`
}

// CreateRecipeRequest is the payload of POST recipes.
type CreateRecipeRequest struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description,omitempty"`
	Instructions string                   `json:"instructions"`
	Ingredients  []models.IngredientDraft `json:"ingredients"`
	UserID       string                   `json:"user_uuid"`
}

// Client is the REST surface of the recipe backend as consumed by the
// services layer.
//
// All methods honor context cancellation. None of them retry.
type Client interface {
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	ListRecipes(ctx context.Context, titleFilter string) ([]models.Recipe, error)
	ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, req CreateRecipeRequest) (*models.Recipe, error)

	ListReviews(ctx context.Context, recipeID string) ([]models.Review, error)
	CreateReview(ctx context.Context, recipeID, userID string, rating int) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID string, rating int) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}
