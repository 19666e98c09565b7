package readmodel

import "github.com/google/uuid"

// AuthorizedUserRM is the authenticated-user projection shared by the auth
// flow and the middleware.
type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}
