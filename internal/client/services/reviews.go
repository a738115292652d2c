package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"tastebook/internal/client/api"
	"tastebook/internal/client/models"
	"tastebook/internal/client/session"
	"tastebook/internal/common"
	"tastebook/internal/logging"
)

// DefaultRating is the rating a fresh review form starts with.
const DefaultRating = 5

// ReviewMode tells whether submitting the form creates a new review or
// updates the user's existing one.
type ReviewMode string

const (
	ReviewModeCreate ReviewMode = "create"
	ReviewModeEdit   ReviewMode = "edit"
)

// ReviewForm is the state of one opened review workflow: which recipe it
// belongs to, whether the current user already reviewed it, and the rating
// the form was opened with.
type ReviewForm struct {
	RecipeID string
	Mode     ReviewMode
	Rating   int

	existing *models.Review
}

// ExistingID returns the id of the review being edited, or "" in create mode.
func (f *ReviewForm) ExistingID() string {
	if f.existing == nil {
		return ""
	}
	return f.existing.ID
}

// ReviewService implements the review workflow: open (fetch and pick mode),
// submit (create or update), delete.
//
// A single submit or delete may be in flight at a time; a second call while
// one is pending fails fast with common.ErrBusy.
type ReviewService interface {
	Open(ctx context.Context, recipeID string) (*ReviewForm, error)
	Submit(ctx context.Context, form *ReviewForm, rating int) error
	Delete(ctx context.Context, form *ReviewForm) error
}

type reviewService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger

	inFlight atomic.Bool
}

func NewReviewService(client api.Client, sessions session.Store, log logging.Logger) ReviewService {
	return &reviewService{client: client, sessions: sessions, log: log}
}

// Open fetches the recipe's full review set and scans it for a review by
// the current user. Found: edit mode, rating pre-filled. Not found: create
// mode, rating DefaultRating.
func (s *reviewService) Open(ctx context.Context, recipeID string) (*ReviewForm, error) {
	sess := s.sessions.Current()
	if sess.IsAnonymous() {
		return nil, common.ErrNoSession
	}

	reviews, err := s.client.ListReviews(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("fetching reviews: %w", err)
	}

	form := &ReviewForm{RecipeID: recipeID, Mode: ReviewModeCreate, Rating: DefaultRating}
	for i := range reviews {
		if reviews[i].UserID == sess.UserID {
			form.Mode = ReviewModeEdit
			form.Rating = reviews[i].Rating
			form.existing = &reviews[i]
			break
		}
	}
	return form, nil
}

// Submit validates the rating locally and issues an update (edit mode) or a
// create (create mode). On success the form resets to its initial create
// state for the next open.
func (s *reviewService) Submit(ctx context.Context, form *ReviewForm, rating int) error {
	if rating < 1 || rating > 5 {
		return &api.ValidationError{Message: "rating must be between 1 and 5"}
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return common.ErrBusy
	}
	defer s.inFlight.Store(false)

	sess := s.sessions.Current()
	if sess.IsAnonymous() {
		return common.ErrNoSession
	}

	if form.Mode == ReviewModeEdit {
		if _, err := s.client.UpdateReview(ctx, form.existing.ID, rating); err != nil {
			return fmt.Errorf("updating review: %w", err)
		}
		s.log.Info(ctx, "review updated", "review_id", form.existing.ID, "rating", rating)
	} else {
		created, err := s.client.CreateReview(ctx, form.RecipeID, sess.UserID, rating)
		if err != nil {
			return fmt.Errorf("creating review: %w", err)
		}
		s.log.Info(ctx, "review created", "review_id", created.ID, "rating", rating)
	}

	form.Mode = ReviewModeCreate
	form.Rating = DefaultRating
	form.existing = nil
	return nil
}

// Delete removes the user's existing review. Only valid in edit mode; the
// caller is responsible for confirming with the user first.
func (s *reviewService) Delete(ctx context.Context, form *ReviewForm) error {
	if form.Mode != ReviewModeEdit || form.existing == nil {
		return &api.ValidationError{Message: "no review to delete"}
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return common.ErrBusy
	}
	defer s.inFlight.Store(false)

	if err := s.client.DeleteReview(ctx, form.existing.ID); err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	s.log.Info(ctx, "review deleted", "review_id", form.existing.ID)
	form.Mode = ReviewModeCreate
	form.Rating = DefaultRating
	form.existing = nil
	return nil
}
