package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"tastebook/internal/client/models"
	"tastebook/internal/client/services"
	"tastebook/internal/client/session"
)

// fakeStore is an in-memory session.Store.
type fakeStore struct {
	cur session.Session
}

func (f *fakeStore) Hydrate(ctx context.Context) (session.Session, error) { return f.cur, nil }
func (f *fakeStore) Establish(ctx context.Context, token, userID string) error {
	f.cur = session.Session{Token: token, UserID: userID}
	return nil
}
func (f *fakeStore) Clear(ctx context.Context) error {
	f.cur = session.Session{}
	return nil
}
func (f *fakeStore) Current() session.Session { return f.cur }
func (f *fakeStore) Token() string            { return f.cur.Token }

// fakeAuthSvc implements services.AuthService.
type fakeAuthSvc struct {
	store *fakeStore

	registerErr error
	loginErr    error
	logoutErr   error

	registerCalls int
	loginCalls    int
	logoutCalls   int
}

func (f *fakeAuthSvc) Register(ctx context.Context, email, password, name string) (session.Session, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return session.Session{}, f.registerErr
	}
	_ = f.store.Establish(ctx, "tok", "u1")
	return f.store.Current(), nil
}

func (f *fakeAuthSvc) Login(ctx context.Context, email, password string) (session.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return session.Session{}, f.loginErr
	}
	_ = f.store.Establish(ctx, "tok", "u1")
	return f.store.Current(), nil
}

func (f *fakeAuthSvc) Logout(ctx context.Context) error {
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	return f.store.Clear(ctx)
}

func (f *fakeAuthSvc) Current() session.Session { return f.store.Current() }

// fakeRecipeSvc implements services.RecipeService.
type fakeRecipeSvc struct {
	listRet   []models.Recipe
	listErr   error
	ownRet    []models.Recipe
	ownErr    error
	createRet *models.Recipe
	createErr error

	lastQuery string
	lastDraft models.RecipeDraft
}

func (f *fakeRecipeSvc) List(ctx context.Context, titleFilter string) ([]models.Recipe, error) {
	f.lastQuery = titleFilter
	return f.listRet, f.listErr
}

func (f *fakeRecipeSvc) ListOwn(ctx context.Context) ([]models.Recipe, error) {
	return f.ownRet, f.ownErr
}

func (f *fakeRecipeSvc) Create(ctx context.Context, draft models.RecipeDraft) (*models.Recipe, error) {
	f.lastDraft = draft
	return f.createRet, f.createErr
}

// fakeReviewSvc implements services.ReviewService.
type fakeReviewSvc struct {
	openForm *services.ReviewForm
	openErr  error

	submitErr error
	deleteErr error

	openCalls   int
	submitCalls int
	deleteCalls int
	lastRating  int
	lastRecipe  string
}

func (f *fakeReviewSvc) Open(ctx context.Context, recipeID string) (*services.ReviewForm, error) {
	f.openCalls++
	f.lastRecipe = recipeID
	return f.openForm, f.openErr
}

func (f *fakeReviewSvc) Submit(ctx context.Context, form *services.ReviewForm, rating int) error {
	f.submitCalls++
	f.lastRating = rating
	return f.submitErr
}

func (f *fakeReviewSvc) Delete(ctx context.Context, form *services.ReviewForm) error {
	f.deleteCalls++
	return f.deleteErr
}

// stubTextInputs replaces the interactive input seams with scripted
// answers, consumed in order.
func stubTextInputs(t *testing.T, answers ...string) {
	t.Helper()
	origText, origPw, origML, origConfirm := getSimpleText, getPassword, getMultiline, confirm

	i := 0
	next := func() string {
		if i >= len(answers) {
			t.Fatalf("input script exhausted after %d answers", len(answers))
		}
		a := answers[i]
		i++
		return a
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) (string, error) { return next(), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return next() == "y", nil }

	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
		getMultiline = origML
		confirm = origConfirm
	})
}

func newTestApp(store *fakeStore) (*App, *fakeAuthSvc, *fakeRecipeSvc, *fakeReviewSvc) {
	auth := &fakeAuthSvc{store: store}
	recipes := &fakeRecipeSvc{}
	reviews := &fakeReviewSvc{}
	app := &App{
		sessions: store,
		auth:     auth,
		recipes:  recipes,
		reviews:  reviews,
	}
	return app, auth, recipes, reviews
}
