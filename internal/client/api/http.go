package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tastebook/internal/client/models"
	"tastebook/internal/common"
	"tastebook/internal/logging"
)

// HTTPClient is the concrete Client talking JSON over HTTP.
//
// A single instance is shared by every screen. If the token source holds a
// token, it is attached as "Authorization: Bearer <token>"; otherwise the
// request goes out unauthenticated. There is no response interceptor:
// failures are mapped to typed errors and returned to the caller untouched.
type HTTPClient struct {
	baseURL  *url.URL
	http     *http.Client
	tokens   TokenSource
	log      logging.Logger
	validate *validator.Validate
	timeout  time.Duration
}

// NewHTTPClient builds the shared pipeline client. baseURL should point at
// the API root, e.g. "http://localhost:3001/api". timeout bounds every
// request; zero disables the bound.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &HTTPClient{
		baseURL:  u,
		http:     &http.Client{},
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
		timeout:  timeout,
	}, nil
}

// errorBody is the shape the backend uses for failure messages.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes the response into out (when non-nil).
// op names the operation for logs and ProtocolError reporting.
func (c *HTTPClient) do(ctx context.Context, op, method string, u *url.URL, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "op", op, "request_id", requestID, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "request finished",
		"op", op, "method", method, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "request failed"
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil && eb.Message != "" {
			msg = eb.Message
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ProtocolError{Op: op, Err: err}
	}
	if err := c.validate.Struct(out); err != nil {
		return &ProtocolError{Op: op, Err: err}
	}
	return nil
}

func (c *HTTPClient) endpoint(parts ...string) *url.URL {
	return c.baseURL.JoinPath(parts...)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	var result AuthResult
	body := credentials{Email: email, Password: password, Name: name}
	if err := c.do(ctx, "auth.register", http.MethodPost, c.endpoint("auth", "register"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	body := credentials{Email: email, Password: password}
	if err := c.do(ctx, "auth.login", http.MethodPost, c.endpoint("auth", "login"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// recipesEnvelope wraps list responses: {"recipes": [...]}.
type recipesEnvelope struct {
	Recipes []models.Recipe `json:"recipes" validate:"omitempty,dive"`
}

func (c *HTTPClient) ListRecipes(ctx context.Context, titleFilter string) ([]models.Recipe, error) {
	u := c.endpoint("recipes")
	if titleFilter != "" {
		q := u.Query()
		q.Set("title", titleFilter)
		u.RawQuery = q.Encode()
	}

	var env recipesEnvelope
	if err := c.do(ctx, "recipes.list", http.MethodGet, u, nil, &env); err != nil {
		return nil, err
	}
	return env.Recipes, nil
}

func (c *HTTPClient) ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	var env recipesEnvelope
	if err := c.do(ctx, "recipes.listOwn", http.MethodGet, c.endpoint("recipes", userID), nil, &env); err != nil {
		return nil, err
	}
	return env.Recipes, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, req CreateRecipeRequest) (*models.Recipe, error) {
	var created models.Recipe
	if err := c.do(ctx, "recipes.create", http.MethodPost, c.endpoint("recipes"), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// reviewsEnvelope wraps GET comment/{recipeId}: {"data": [...]}.
type reviewsEnvelope struct {
	Data []models.Review `json:"data" validate:"omitempty,dive"`
}

func (c *HTTPClient) ListReviews(ctx context.Context, recipeID string) ([]models.Review, error) {
	var env reviewsEnvelope
	if err := c.do(ctx, "reviews.list", http.MethodGet, c.endpoint("comment", recipeID), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

type createReviewRequest struct {
	RecipeID string `json:"recipe_uuid"`
	UserID   string `json:"user_uuid"`
	Rating   int    `json:"rating"`
}

func (c *HTTPClient) CreateReview(ctx context.Context, recipeID, userID string, rating int) (*models.Review, error) {
	var created models.Review
	body := createReviewRequest{RecipeID: recipeID, UserID: userID, Rating: rating}
	if err := c.do(ctx, "reviews.create", http.MethodPost, c.endpoint("comment"), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type updateReviewRequest struct {
	ReviewID string `json:"review_uuid"`
	Rating   int    `json:"rating"`
}

func (c *HTTPClient) UpdateReview(ctx context.Context, reviewID string, rating int) (*models.Review, error) {
	var updated models.Review
	body := updateReviewRequest{ReviewID: reviewID, Rating: rating}
	if err := c.do(ctx, "reviews.update", http.MethodPut, c.endpoint("comment"), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, "reviews.delete", http.MethodDelete, c.endpoint("comment", reviewID), nil, nil)
}
