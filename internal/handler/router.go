package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wishlink/internal/handler/api"
	"wishlink/internal/handler/middleware"
	"wishlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	wishlistHandler *api.WishlistHandler,
	itemHandler *api.ItemHandler,
	contributionHandler *api.ContributionHandler,
	ideasHandler *api.IdeasHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, wishlistHandler, itemHandler, contributionHandler, ideasHandler, eventsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.GuestIdentity())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	wishlistHandler *api.WishlistHandler,
	itemHandler *api.ItemHandler,
	contributionHandler *api.ContributionHandler,
	ideasHandler *api.IdeasHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/verify", Handler: authHandler.Verify},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		wishlists := apiGroup.Group("/wishlists")
		{
			// Shared pages are public by link; the rest is owner-only.
			addRoutes(wishlists, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: wishlistHandler.Get},
				{Method: http.MethodGet, Path: "/:id/items", Handler: wishlistHandler.ListItems},
				{Method: http.MethodGet, Path: "/:id/events", Handler: eventsHandler.Stream},
			})

			ownerOnly := wishlists.Group("")
			ownerOnly.Use(authMiddleware.RequireAuth())
			addRoutes(ownerOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: wishlistHandler.List},
				{Method: http.MethodPost, Path: "", Handler: wishlistHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: wishlistHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/items", Handler: itemHandler.Add},
			})
		}

		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "/:id/reservation", Handler: itemHandler.ToggleReservation},
				{Method: http.MethodPost, Path: "/:id/contributions", Handler: contributionHandler.Add},
			})

			ownerOnly := items.Group("")
			ownerOnly.Use(authMiddleware.RequireAuth())
			addRoutes(ownerOnly, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: itemHandler.Delete},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/ideas", Handler: ideasHandler.Generate},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
