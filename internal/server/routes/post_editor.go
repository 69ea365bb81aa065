package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notemesh/backend/internal/server/middleware"
	"github.com/notemesh/backend/pkg/common"
)

// AnalyzeWritingHandler evaluates in-progress editor text: quality score,
// writing suggestions, and related documents worth linking. Called on a
// debounced interval while the user types.
func AnalyzeWritingHandler(c echo.Context) error {
	type analyzeParams struct {
		Text       string `json:"text" validate:"required"`
		DocumentID string `json:"document_id"`
		Kind       string `json:"kind"`
	}

	params := new(analyzeParams)
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

	analysis, err := engine.AnalyzeWritingContext(ctx, user.UserID, params.Text, params.DocumentID, common.DocumentKind(params.Kind))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to analyze text"})
	}

	return c.JSON(http.StatusOK, analysis)
}

// SuggestLinksHandler ranks link targets for a user-selected text span.
func SuggestLinksHandler(c echo.Context) error {
	type suggestParams struct {
		SelectedText string `json:"selected_text" validate:"required"`
		DocumentID   string `json:"document_id"`
	}

	params := new(suggestParams)
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

	suggestions, err := engine.SuggestLinksForSelection(ctx, user.UserID, params.SelectedText, params.DocumentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to suggest links"})
	}

	return c.JSON(http.StatusOK, suggestions)
}
