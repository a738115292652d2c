package models

// Review is a (rating, recipe, user) tuple. The backend calls the same
// entity a "comment"; the wire paths keep that name.
type Review struct {
	ID       string `json:"review_uuid" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	RecipeID string `json:"recipe_uuid,omitempty"`
	UserID   string `json:"user_uuid" validate:"required"`
}
