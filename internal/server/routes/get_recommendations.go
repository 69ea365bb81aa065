package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/server/middleware"
)

// GetRecommendationsHandler returns the documents most related to the
// target document, ranked by edge weight.
func GetRecommendationsHandler(c echo.Context) error {
	type getRecommendationsParams struct {
		DocumentID string `param:"id" validate:"required"`
		Limit      int    `query:"limit"`
	}

	params := new(getRecommendationsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	engine := c.(*middleware.AppContext).App.Engine

	recommendations, err := engine.Recommendations(ctx, user.UserID, params.DocumentID, params.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to compute recommendations"})
	}

	return c.JSON(http.StatusOK, recommendations)
}
