package components

import (
	"wishlink/internal/handler"
	"wishlink/internal/handler/api"
	"wishlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWishlistHandler,
		api.NewItemHandler,
		api.NewContributionHandler,
		api.NewIdeasHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
