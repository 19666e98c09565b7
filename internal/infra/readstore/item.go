package readstore

import (
	"context"

	"wishlink/internal/infra"
	"wishlink/internal/infra/db"
	"wishlink/internal/pkg/pgconv"
	"wishlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(pool db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: pool}
}

const findItemByIDSQL = `
SELECT id, wishlist_id, name, price_cents, image_url, product_url, reserved_by_guest_id, created_at
FROM items
WHERE id = $1
`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemRecord, error) {
	var (
		rec        queries.ItemRecord
		imageURL   pgtype.Text
		productURL pgtype.Text
		reservedBy pgtype.Text
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findItemByIDSQL, id).
		Scan(&rec.ID, &rec.WishlistID, &rec.Name, &rec.PriceCents, &imageURL, &productURL, &reservedBy, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	rec.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	rec.ProductURL = pgconv.StringPtrFromPgtype(productURL)
	rec.ReservedBy = pgconv.StringPtrFromPgtype(reservedBy)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &rec, nil
}

const findItemsByWishlistSQL = `
SELECT id, wishlist_id, name, price_cents, image_url, product_url, reserved_by_guest_id, created_at
FROM items
WHERE wishlist_id = $1
ORDER BY created_at ASC
`

func (r *ItemReadStore) FindByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]*queries.ItemRecord, error) {
	rows, err := r.db.Query(ctx, findItemsByWishlistSQL, wishlistID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by wishlist", err)
	}
	defer rows.Close()

	var records []*queries.ItemRecord
	for rows.Next() {
		var (
			rec        queries.ItemRecord
			imageURL   pgtype.Text
			productURL pgtype.Text
			reservedBy pgtype.Text
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&rec.ID, &rec.WishlistID, &rec.Name, &rec.PriceCents, &imageURL, &productURL, &reservedBy, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		rec.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
		rec.ProductURL = pgconv.StringPtrFromPgtype(productURL)
		rec.ReservedBy = pgconv.StringPtrFromPgtype(reservedBy)
		rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return records, nil
}

const findContributionsByItemIDsSQL = `
SELECT id, item_id, amount_cents, contributor_name, guest_id, created_at
FROM contributions
WHERE item_id = ANY($1)
ORDER BY created_at ASC
`

func (r *ItemReadStore) FindContributionsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.ContributionRecord, error) {
	rows, err := r.db.Query(ctx, findContributionsByItemIDsSQL, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contributions by item IDs", err)
	}
	defer rows.Close()

	var records []*queries.ContributionRecord
	for rows.Next() {
		var (
			rec       queries.ContributionRecord
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rec.ID, &rec.ItemID, &rec.AmountCents, &rec.ContributorName, &rec.GuestID, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contribution row", err)
		}
		rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contribution rows", err)
	}
	return records, nil
}
