package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/server/middleware"
)

// ValidateLinkHandler reports whether a wiki-link title resolves to a
// document in the user's corpus.
func ValidateLinkHandler(c echo.Context) error {
	type validateLinkParams struct {
		Title string `query:"title" validate:"required"`
	}

	type validateLinkResponse struct {
		Valid bool `json:"valid"`
	}

	params := new(validateLinkParams)
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

	valid, err := engine.ValidateWikiLink(ctx, user.UserID, params.Title)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to validate link"})
	}

	return c.JSON(http.StatusOK, validateLinkResponse{Valid: valid})
}
