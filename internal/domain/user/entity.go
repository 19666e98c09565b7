package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Accounts start inactive and become active once
// the emailed verification token is redeemed.
type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	isActive          bool
	verificationToken *string
	lastLogin         *time.Time
	createdAt         time.Time
}

func NewUser(email Email, passwordHash string, verificationToken string) *User {
	token := verificationToken
	return &User{
		id:                uuid.New(),
		email:             email,
		passwordHash:      passwordHash,
		isActive:          false,
		verificationToken: &token,
	}
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, isActive bool, verificationToken *string, lastLogin *time.Time, createdAt time.Time) *User {
	return &User{
		id:                id,
		email:             email,
		passwordHash:      passwordHash,
		isActive:          isActive,
		verificationToken: verificationToken,
		lastLogin:         lastLogin,
		createdAt:         createdAt,
	}
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) VerificationToken() *string { return u.verificationToken }
func (u *User) LastLogin() *time.Time      { return u.lastLogin }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
