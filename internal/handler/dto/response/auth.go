package response

import (
	"wishlink/internal/usecase/readmodel"
)

type RegisterResponse struct {
	ID string `json:"id"`
	// VerificationToken is returned directly until outbound email is wired up.
	VerificationToken string `json:"verification_token"`
}

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}
