package repository

import (
	"context"

	"wishlink/internal/domain/contribution"
	"wishlink/internal/infra"
	"wishlink/internal/infra/db"

	"github.com/google/uuid"
)

type ContributionRepository struct{}

func NewContributionRepository() *ContributionRepository {
	return &ContributionRepository{}
}

// Create is the only write path for contributions: they are immutable once
// persisted and are removed only by the item cascade.
func (r *ContributionRepository) Create(ctx context.Context, dbtx db.DBTX, c *contribution.Contribution) (uuid.UUID, error) {
	const query = `
		INSERT INTO contributions (id, item_id, amount_cents, contributor_name, guest_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		c.ID(),
		c.ItemID(),
		c.Amount().Cents(),
		c.ContributorName(),
		c.GuestID().Value(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("item does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create contribution", err)
	}
	return id, nil
}
