package components

import (
	"wishlink/internal/pkg/clock"
	"wishlink/internal/usecase"
	"wishlink/internal/usecase/commands"
	"wishlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	usecase.NewIdeasUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWishlistUseCase,
		commands.NewItemUseCase,
		commands.NewContributionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWishlistQueries,
		queries.NewItemQueries,
	),
)
