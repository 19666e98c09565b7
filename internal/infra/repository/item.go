package repository

import (
	"context"

	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/internal/infra"
	"wishlink/internal/infra/db"
	"wishlink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO items (id, wishlist_id, name, price_cents, image_url, product_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		it.ID(),
		it.WishlistID(),
		it.Name().Value(),
		it.Price().Cents(),
		pgconv.StringPtrToPgtype(it.ImageURL()),
		pgconv.StringPtrToPgtype(it.ProductURL()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateReservation has no guard against an intervening writer. The toggle is
// last-writer-wins end to end; see the reservation design notes.
func (r *ItemRepository) UpdateReservation(ctx context.Context, dbtx db.DBTX, itemID uuid.UUID, holder *guest.Identity) error {
	var value *string
	if holder != nil {
		v := holder.Value()
		value = &v
	}

	tag, err := dbtx.Exec(ctx,
		`UPDATE items SET reserved_by_guest_id = $1 WHERE id = $2`,
		pgconv.StringPtrToPgtype(value), itemID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
