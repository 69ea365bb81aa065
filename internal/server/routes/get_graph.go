package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/server/middleware"
)

// GetGraphHandler builds and returns the user's knowledge graph: nodes,
// weighted edges, and kind clusters. An empty corpus yields an empty
// graph, not an error.
func GetGraphHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	engine := c.(*middleware.AppContext).App.Engine

	graph, err := engine.BuildGraph(ctx, user.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build knowledge graph"})
	}

	return c.JSON(http.StatusOK, graph)
}
