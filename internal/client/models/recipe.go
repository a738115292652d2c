// Package models defines the client-side view of backend entities and the
// ephemeral draft types built up by interactive forms. Field tags follow the
// wire names of the REST API (user_uuid, ingredient_uuid, review_uuid).
package models

import (
	"strings"
	"time"
)

// Ingredient is one line of a recipe as returned by the backend.
type Ingredient struct {
	ID       string `json:"ingredient_uuid"`
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
}

// Recipe is a read-only snapshot owned by the backend. The client never
// mutates it; screens re-fetch instead of maintaining cache coherency.
type Recipe struct {
	ID           string       `json:"id" validate:"required"`
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description,omitempty"`
	Instructions string       `json:"instructions"`
	CreatedAt    time.Time    `json:"createdAt"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// IngredientDraft is a mutable ingredient row in the create-recipe form.
type IngredientDraft struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Empty reports whether the row has neither name nor quantity after trimming.
func (d IngredientDraft) Empty() bool {
	return strings.TrimSpace(d.Name) == "" && strings.TrimSpace(d.Quantity) == ""
}

// Complete reports whether both name and quantity are non-empty after trimming.
func (d IngredientDraft) Complete() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Quantity) != ""
}

// RecipeDraft is the not-yet-submitted form state of the create-recipe
// screen. It is not persisted anywhere until submission succeeds.
type RecipeDraft struct {
	Title        string
	Description  string
	Instructions string
	Ingredients  []IngredientDraft
}

// NewRecipeDraft returns an empty draft with a single blank ingredient row,
// the initial state of the create-recipe form.
func NewRecipeDraft() RecipeDraft {
	return RecipeDraft{Ingredients: []IngredientDraft{{}}}
}

// CompleteIngredients returns the draft rows that have both name and
// quantity set, trimmed. Rows missing either field are dropped.
func (d RecipeDraft) CompleteIngredients() []IngredientDraft {
	result := make([]IngredientDraft, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		if ing.Complete() {
			result = append(result, IngredientDraft{
				Name:     strings.TrimSpace(ing.Name),
				Quantity: strings.TrimSpace(ing.Quantity),
			})
		}
	}
	return result
}
