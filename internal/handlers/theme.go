package handlers

import (
	"net/http"

	"storefront/internal/models"

	"github.com/gin-gonic/gin"
)

const errToggleTheme = "failed to toggle theme"

type themeResponse struct {
	Theme models.Theme `json:"theme"`
	Glyph string       `json:"glyph"`
}

// @Summary      Current theme
// @Description  Applies the one-time dark default for new visitors.
// @Tags         theme
// @Produce      json
// @Success      200  {object}  map[string]string  "theme, glyph"
// @Router       /api/v1/theme [get]
func (h *Handler) getTheme(c *gin.Context) {
	theme, err := h.services.Theme.Init(c.Request.Context(), visitorID(c))
	if err != nil && h.log != nil {
		h.log.Warnw("theme_init_failed", "err", err, "visitor_id", visitorID(c))
	}
	c.JSON(http.StatusOK, themeResponse{Theme: theme, Glyph: theme.Glyph()})
}

// @Summary      Toggle theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  map[string]string  "theme, glyph"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/theme/toggle [post]
func (h *Handler) toggleTheme(c *gin.Context) {
	theme, err := h.services.Theme.Toggle(c.Request.Context(), visitorID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errToggleTheme, "theme_toggle_failed", err, "visitor_id", visitorID(c))
		return
	}
	c.JSON(http.StatusOK, themeResponse{Theme: theme, Glyph: theme.Glyph()})
}
