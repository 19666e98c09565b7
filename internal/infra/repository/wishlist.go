package repository

import (
	"context"

	"wishlink/internal/domain/wishlist"
	"wishlink/internal/infra"
	"wishlink/internal/infra/db"
	"wishlink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

func (r *WishlistRepository) Create(ctx context.Context, dbtx db.DBTX, w *wishlist.Wishlist) (uuid.UUID, error) {
	const query = `
		INSERT INTO wishlists (id, title, owner_id, event_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		w.ID(),
		w.Title().Value(),
		pgconv.UUIDPtrToPgtype(w.OwnerID()),
		pgconv.DatePtrToPgtype(w.EventDate()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create wishlist", err)
	}
	return id, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete wishlist", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wishlist not found", nil, infra.KindNotFound)
	}
	return nil
}
