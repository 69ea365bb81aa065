package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/queue"
	"github.com/notemesh/backend/internal/server/middleware"
	"github.com/notemesh/backend/pkg/logger"
	"github.com/notemesh/backend/pkg/store"
)

// ResolveLinksHandler parses and resolves a document's wiki-links against
// the corpus and returns them, including broken links. Persisting the
// resolved target IDs happens asynchronously: a job is published to the
// links queue, and a publish failure never fails this call.
func ResolveLinksHandler(c echo.Context) error {
	type resolveLinksParams struct {
		DocumentID string `param:"id" validate:"required"`
	}

	params := new(resolveLinksParams)
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
	app := c.(*middleware.AppContext).App

	links, err := app.Engine.ResolveLinks(ctx, user.UserID, params.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Document not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve links"})
	}

	if err := queue.PublishLinkJob(app.Queue, user.UserID, params.DocumentID); err != nil {
		logger.Error("[Links] Failed to publish link job", "document_id", params.DocumentID, "err", err)
	}

	return c.JSON(http.StatusOK, links)
}
