package handlers

import (
	"net/http"

	"storefront/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "sf_visitor"
	sessionCookie = "sf_session"

	visitorCookieMaxAge = 365 * 24 * 60 * 60

	ctxVisitorID = "visitorId"
	ctxSession   = "session"
	ctxKind      = "catalogKind"

	errUnknownCatalog = "unknown catalog"
)

// visitorMiddleware resolves the long-lived visitor id, issuing one on the
// first request.
func (h *Handler) visitorMiddleware(c *gin.Context) {
	id, err := c.Cookie(visitorCookie)
	if err != nil || !validVisitorID(id) {
		id = uuid.NewString()
		h.setCookie(c, visitorCookie, id, visitorCookieMaxAge)
	}
	c.Set(ctxVisitorID, id)
	c.Next()
}

func validVisitorID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// sessionMiddleware loads the session-only state. A missing or unreadable
// cookie is a fresh session.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	var st models.SessionState
	if raw, err := c.Cookie(sessionCookie); err == nil && raw != "" {
		parsed, perr := h.services.Session.Parse(raw)
		if perr != nil {
			if h.log != nil {
				h.log.Debugw("session_cookie_rejected", "err", perr)
			}
		} else {
			st = parsed
		}
	}
	c.Set(ctxSession, st)
	c.Next()
}

// catalogKindMiddleware validates the :kind path parameter.
func (h *Handler) catalogKindMiddleware(c *gin.Context) {
	kind, ok := models.ParseCatalogKind(c.Param("kind"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errUnknownCatalog})
		return
	}
	c.Set(ctxKind, kind)
	c.Next()
}

// saveSession signs st into the session cookie (no Max-Age, so the browser
// drops it with the session).
func (h *Handler) saveSession(c *gin.Context, st models.SessionState) error {
	token, err := h.services.Session.Issue(st)
	if err != nil {
		return err
	}
	h.setCookie(c, sessionCookie, token, 0)
	c.Set(ctxSession, st)
	return nil
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secureCookies, true)
}

func visitorID(c *gin.Context) string {
	return c.GetString(ctxVisitorID)
}

func sessionState(c *gin.Context) models.SessionState {
	if v, ok := c.Get(ctxSession); ok {
		if st, ok := v.(models.SessionState); ok {
			return st
		}
	}
	return models.SessionState{}
}

func catalogKind(c *gin.Context) models.CatalogKind {
	if v, ok := c.Get(ctxKind); ok {
		if kind, ok := v.(models.CatalogKind); ok {
			return kind
		}
	}
	return models.CatalogRepair
}
