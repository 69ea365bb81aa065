package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	mid "github.com/notemesh/backend/internal/server/middleware"
	"github.com/notemesh/backend/internal/server/routes"
	"github.com/notemesh/backend/internal/util"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", mid.AuthMiddleware)

	// Knowledge graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/documents/:id/recommendations", routes.GetRecommendationsHandler)
	apiRoutes.GET("/documents/:id/backlinks", routes.GetBacklinksHandler)

	// Wiki-link routes
	apiRoutes.GET("/links/validate", routes.ValidateLinkHandler)
	apiRoutes.POST("/documents/:id/links", routes.ResolveLinksHandler, mid.RequirePermission("document.update:links"))

	// Editor routes are driven by keystroke-debounced calls, so they get
	// their own rate limit.
	editorLimit := rate.Limit(util.GetEnvNumeric("EDITOR_RATE_LIMIT", 20))
	editorRoutes := apiRoutes.Group("/editor",
		middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(editorLimit)),
	)
	editorRoutes.POST("/analyze", routes.AnalyzeWritingHandler)
	editorRoutes.POST("/suggest", routes.SuggestLinksHandler)
}
