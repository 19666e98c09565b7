package shared

import (
	"context"

	"wishlink/internal/domain/contribution"
	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/internal/domain/wishlist"
	"wishlink/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Wishlists() WishlistRepository
	Items() ItemRepository
	Contributions() ContributionRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	WishlistByID(ctx context.Context, id uuid.UUID) (*WishlistSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
}

type WishlistRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, w *wishlist.Wishlist) (uuid.UUID, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (uuid.UUID, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	// UpdateReservation overwrites the holder unconditionally: last writer wins.
	UpdateReservation(ctx context.Context, dbtx db.DBTX, itemID uuid.UUID, holder *guest.Identity) error
}

type ContributionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *contribution.Contribution) (uuid.UUID, error)
}
