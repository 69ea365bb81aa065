package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/server/middleware"
	"github.com/notemesh/backend/pkg/store"
)

// GetBacklinksHandler returns every document that wiki-links to the
// target document's title.
func GetBacklinksHandler(c echo.Context) error {
	type getBacklinksParams struct {
		DocumentID string `param:"id" validate:"required"`
	}

	params := new(getBacklinksParams)
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

	backlinks, err := engine.Backlinks(ctx, user.UserID, params.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Document not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to find backlinks"})
	}

	return c.JSON(http.StatusOK, backlinks)
}
