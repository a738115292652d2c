package models

// User is the identity returned by the auth endpoints.
type User struct {
	ID    string `json:"id" validate:"required"`
	Email string `json:"email"`
}
