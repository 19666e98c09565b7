package repository

import (
	"context"
	"errors"

	"wishlink/internal/domain/user"
	"wishlink/internal/infra"
	"wishlink/internal/infra/db"
	"wishlink/internal/pkg/pgconv"
	"wishlink/internal/usecase"
	"wishlink/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type userRepository struct {
	pool db.DBTX
}

func NewUserRepository(pool db.DBTX) usecase.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, is_active, verification_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.IsActive(),
		pgconv.StringPtrToPgtype(u.VerificationToken()),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `
		SELECT id, email, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.pool.QueryRow(ctx, query, email.Value()).Scan(&rm.ID, &rm.Email, &rm.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const query = `
		SELECT id, email, is_active
		FROM users
		WHERE id = $1`

	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Email, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &rm, nil
}

// Activate redeems a verification token. The token is cleared so it cannot be
// replayed.
func (r *userRepository) Activate(ctx context.Context, token string) error {
	if token == "" {
		return infra.WrapRepoErr("verification token required", errors.New("empty token"), infra.KindNotFound)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET is_active = TRUE, verification_token = NULL
		WHERE verification_token = $1 AND is_active = FALSE`,
		token,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to activate user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("verification token not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET last_login = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
