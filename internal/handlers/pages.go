package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	storefrontTemplate = "storefront.tmpl"

	titleRepair = "Ashok Services | Mobile Repair"
	titleParts  = "Ashok Services | Spare Parts"

	formReturnTo = "return_to"
)

// pageData is everything storefront.tmpl renders.
type pageData struct {
	Kind       models.CatalogKind
	Title      string
	Path       string
	ReturnTo   string
	Theme      models.Theme
	ThemeGlyph string

	View              catalog.View
	BrandPlaceholder  string
	OptionPlaceholder string
	Loaded            bool

	ShowPopup bool
}

// storefrontPage renders the repair or parts page for the selection carried
// in the query string and asks the loader to refresh the sheet.
func (h *Handler) storefrontPage(c *gin.Context) {
	ctx := c.Request.Context()
	path := c.Request.URL.Path
	kind := h.services.Catalog.KindForPath(path)

	h.services.CatalogLoader.Refresh(kind)

	theme, err := h.services.Theme.Init(ctx, visitorID(c))
	if err != nil && h.log != nil {
		h.log.Warnw("theme_init_failed", "err", err, "visitor_id", visitorID(c))
	}

	view := h.services.Catalog.View(kind, selectionFromQuery(c))
	status := h.services.Catalog.Status(kind)

	title := titleRepair
	if kind == models.CatalogParts {
		title = titleParts
	}

	c.HTML(http.StatusOK, storefrontTemplate, pageData{
		Kind:              kind,
		Title:             title,
		Path:              path,
		ReturnTo:          c.Request.URL.RequestURI(),
		Theme:             theme,
		ThemeGlyph:        theme.Glyph(),
		View:              view,
		BrandPlaceholder:  catalog.BrandPlaceholder,
		OptionPlaceholder: catalog.OptionPlaceholder,
		Loaded:            status.Loaded,
		ShowPopup:         kind == models.CatalogParts && !sessionState(c).PopupShown,
	})
}

// selectionFromQuery reads the selector values; a missing or malformed
// option index means no option.
func selectionFromQuery(c *gin.Context) catalog.Selection {
	sel := catalog.Selection{
		Brand:   c.Query("brand"),
		Model:   c.Query("model"),
		Option:  catalog.NoOption,
		Search:  strings.TrimSpace(c.Query("search")),
		Changed: c.Query("changed"),
	}
	if raw := c.Query("option"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 {
			sel.Option = i
		}
	}
	return sel
}

// submitInquiry answers the page's inquiry form with a redirect to the
// WhatsApp deep link.
func (h *Handler) submitInquiry(c *gin.Context) {
	inq := h.services.Inquiry.Compose(service.InquiryRequest{
		Brand:   c.PostForm("brand"),
		Model:   c.PostForm("model"),
		Service: c.PostForm("service"),
		Price:   c.PostForm("price"),
	})
	c.Redirect(http.StatusSeeOther, inq.URL)
}

func (h *Handler) toggleThemePage(c *gin.Context) {
	if _, err := h.services.Theme.Toggle(c.Request.Context(), visitorID(c)); err != nil && h.log != nil {
		h.log.Errorw("theme_toggle_failed", "err", err, "visitor_id", visitorID(c))
	}
	redirectBack(c)
}

// submitLead records the popup form. An incomplete form leaves the popup
// open on the next render.
func (h *Handler) submitLead(c *gin.Context) {
	lead, err := h.services.Leads.Capture(c.Request.Context(), models.Lead{
		Name:    c.PostForm("custName"),
		Shop:    c.PostForm("shopName"),
		Address: c.PostForm("custAddress"),
		Phone:   c.PostForm("custPhone"),
	})
	if err != nil {
		if h.log != nil && !errors.Is(err, service.ErrLeadIncomplete) {
			h.log.Errorw("lead_capture_failed", "err", err)
		}
		redirectBack(c)
		return
	}
	h.closePopup(c, "lead_id", lead.ID)
	redirectBack(c)
}

func (h *Handler) dismissLead(c *gin.Context) {
	h.closePopup(c)
	redirectBack(c)
}

func (h *Handler) closePopup(c *gin.Context, kv ...interface{}) {
	if err := h.saveSession(c, models.SessionState{PopupShown: true}); err != nil && h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw("session_save_failed", fields...)
	}
}

// redirectBack returns to the page named by the return_to form field, or the
// home page when it is missing or not a local path.
func redirectBack(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, safeReturnPath(c.PostForm(formReturnTo)))
}

func safeReturnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}
