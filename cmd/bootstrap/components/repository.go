package components

import (
	"wishlink/internal/infra/db"
	"wishlink/internal/infra/readstore"
	"wishlink/internal/infra/repository"
	"wishlink/internal/infra/uow"
	"wishlink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewUserRepository,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewWishlistReadStore,
			fx.As(new(queries.WishlistReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
