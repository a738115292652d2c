package services

import (
	"context"
	"io"
	"log/slog"

	"tastebook/internal/client/api"
	"tastebook/internal/client/models"
	"tastebook/internal/client/session"
	"tastebook/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

// fakeSessions is an in-memory session.Store for service tests.
type fakeSessions struct {
	cur          session.Session
	establishErr error
	clearErr     error

	establishCalls int
	clearCalls     int
}

func (f *fakeSessions) Hydrate(ctx context.Context) (session.Session, error) {
	return f.cur, nil
}

func (f *fakeSessions) Establish(ctx context.Context, token, userID string) error {
	f.establishCalls++
	if f.establishErr != nil {
		return f.establishErr
	}
	f.cur = session.Session{Token: token, UserID: userID}
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cur = session.Session{}
	return nil
}

func (f *fakeSessions) Current() session.Session { return f.cur }
func (f *fakeSessions) Token() string            { return f.cur.Token }

// fakeClient implements api.Client with canned results and call recording.
type fakeClient struct {
	RegisterRet *api.AuthResult
	RegisterErr error
	LoginRet    *api.AuthResult
	LoginErr    error

	ListRecipesRet     []models.Recipe
	ListRecipesErr     error
	ListUserRecipesRet []models.Recipe
	ListUserRecipesErr error
	CreateRecipeRet    *models.Recipe
	CreateRecipeErr    error

	ListReviewsRet  []models.Review
	ListReviewsErr  error
	CreateReviewRet *models.Review
	CreateReviewErr error
	UpdateReviewRet *models.Review
	UpdateReviewErr error
	DeleteReviewErr error

	// EnteredCreateReview is closed when CreateReview is entered;
	// BlockCreateReview, when non-nil, blocks it until closed.
	EnteredCreateReview chan struct{}
	BlockCreateReview   chan struct{}

	LastRegisterEmail string
	LastRegisterName  string
	LastLoginEmail    string
	LastTitleFilter   string
	LastListUserID    string
	LastCreateRecipe  api.CreateRecipeRequest
	LastReviewsRecipe string
	LastCreateReview  [3]any // recipeID, userID, rating
	LastUpdateReview  [2]any // reviewID, rating
	LastDeleteReview  string

	RegisterCalls     int
	LoginCalls        int
	CreateRecipeCalls int
	CreateReviewCalls int
	UpdateReviewCalls int
	DeleteReviewCalls int
}

func (f *fakeClient) Register(ctx context.Context, email, password, name string) (*api.AuthResult, error) {
	f.RegisterCalls++
	f.LastRegisterEmail = email
	f.LastRegisterName = name
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	f.LoginCalls++
	f.LastLoginEmail = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListRecipes(ctx context.Context, titleFilter string) ([]models.Recipe, error) {
	f.LastTitleFilter = titleFilter
	return f.ListRecipesRet, f.ListRecipesErr
}

func (f *fakeClient) ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	f.LastListUserID = userID
	return f.ListUserRecipesRet, f.ListUserRecipesErr
}

func (f *fakeClient) CreateRecipe(ctx context.Context, req api.CreateRecipeRequest) (*models.Recipe, error) {
	f.CreateRecipeCalls++
	f.LastCreateRecipe = req
	return f.CreateRecipeRet, f.CreateRecipeErr
}

func (f *fakeClient) ListReviews(ctx context.Context, recipeID string) ([]models.Review, error) {
	f.LastReviewsRecipe = recipeID
	return f.ListReviewsRet, f.ListReviewsErr
}

func (f *fakeClient) CreateReview(ctx context.Context, recipeID, userID string, rating int) (*models.Review, error) {
	f.CreateReviewCalls++
	f.LastCreateReview = [3]any{recipeID, userID, rating}
	if f.EnteredCreateReview != nil {
		close(f.EnteredCreateReview)
		f.EnteredCreateReview = nil
	}
	if f.BlockCreateReview != nil {
		<-f.BlockCreateReview
	}
	return f.CreateReviewRet, f.CreateReviewErr
}

func (f *fakeClient) UpdateReview(ctx context.Context, reviewID string, rating int) (*models.Review, error) {
	f.UpdateReviewCalls++
	f.LastUpdateReview = [2]any{reviewID, rating}
	return f.UpdateReviewRet, f.UpdateReviewErr
}

func (f *fakeClient) DeleteReview(ctx context.Context, reviewID string) error {
	f.DeleteReviewCalls++
	f.LastDeleteReview = reviewID
	return f.DeleteReviewErr
}
