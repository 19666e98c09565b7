//go:build unit || e2e

package builder

import (
	domuser "wishlink/internal/domain/user"
	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		Password: "password123",
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildCredentials() (domuser.Credentials, error) {
	return domuser.NewCredentials(b.Email, b.Password)
}

func (b *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       b.ID,
		Email:    b.Email,
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
