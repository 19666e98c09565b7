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

type WishlistReadStore struct {
	db db.DBTX
}

func NewWishlistReadStore(pool db.DBTX) *WishlistReadStore {
	return &WishlistReadStore{db: pool}
}

const findWishlistByIDSQL = `
SELECT id, title, owner_id, event_date, created_at
FROM wishlists
WHERE id = $1
`

func (r *WishlistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WishlistView, error) {
	row := r.db.QueryRow(ctx, findWishlistByIDSQL, id)

	view, err := scanWishlistView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("wishlist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find wishlist by ID", err)
	}
	return view, nil
}

const findWishlistsByOwnerSQL = `
SELECT id, title, owner_id, event_date, created_at
FROM wishlists
WHERE owner_id = $1
ORDER BY created_at DESC
`

func (r *WishlistReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.WishlistView, error) {
	rows, err := r.db.Query(ctx, findWishlistsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find wishlists by owner", err)
	}
	defer rows.Close()

	var views []*queries.WishlistView
	for rows.Next() {
		view, serr := scanWishlistView(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan wishlist row", serr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate wishlist rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWishlistView(row rowScanner) (*queries.WishlistView, error) {
	var (
		id        uuid.UUID
		title     string
		ownerID   pgtype.UUID
		eventDate pgtype.Date
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &title, &ownerID, &eventDate, &createdAt); err != nil {
		return nil, err
	}
	return &queries.WishlistView{
		ID:        id,
		Title:     title,
		OwnerID:   pgconv.UUIDPtrFromPgtype(ownerID),
		EventDate: pgconv.DatePtrFromPgtype(eventDate),
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
