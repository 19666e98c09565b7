package usecase

import (
	"context"
	"errors"

	"wishlink/internal/domain/user"
	"wishlink/internal/infra"
	"wishlink/internal/pkg/jwt"
	"wishlink/internal/pkg/password"
	"wishlink/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is not verified")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrVerificationFailed   = errors.New("verification token is invalid or already used")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	Activate(ctx context.Context, token string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	// Register creates an inactive account and returns the verification token
	// the caller must redeem before logging in.
	Register(ctx context.Context, credentials user.Credentials) (uuid.UUID, string, error)
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, credentials user.Credentials) (uuid.UUID, string, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, "", ErrAuthenticationFailed
	}

	token := uuid.NewString()
	newUser := user.NewUser(credentials.Email(), hash, token)

	id, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, "", ErrEmailTaken
		}
		return uuid.Nil, "", err
	}
	return id, token, nil
}

func (a *authUseCaseImpl) Verify(ctx context.Context, token string) error {
	if err := a.userRepo.Activate(ctx, token); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVerificationFailed
		}
		return err
	}
	return nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(userReadModel.ID, userReadModel.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userReadModel.ID); err != nil {
		return "", nil, err
	}

	return token, userReadModel, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || userReadModel == nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	current, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || current == nil {
		return nil, ErrUserNotFound
	}

	if !current.IsActive {
		return nil, ErrUserInactive
	}

	return current, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}
	return claims.UserID, claims.Email, nil
}
