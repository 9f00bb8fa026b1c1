package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK     = "ok"
	statusQueued = "refresh_queued"

	errLoadCatalog     = "failed to load catalog"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List brands
// @Tags         catalog
// @Produce      json
// @Param        kind  path      string  true  "Catalog"  Enums(repair,parts)
// @Success      200   {object}  map[string]interface{}  "kind, brands"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/brands [get]
func (h *Handler) listBrands(c *gin.Context) {
	kind := catalogKind(c)
	c.JSON(http.StatusOK, gin.H{
		"kind":   kind,
		"brands": h.services.Catalog.Brands(kind),
	})
}

// @Summary      List models of a brand
// @Tags         catalog
// @Produce      json
// @Param        kind   path      string  true   "Catalog"  Enums(repair,parts)
// @Param        brand  query     string  false  "Brand; empty yields no models"
// @Success      200    {object}  map[string]interface{}  "kind, brand, models"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/models [get]
func (h *Handler) listModels(c *gin.Context) {
	kind := catalogKind(c)
	brand := c.Query("brand")
	c.JSON(http.StatusOK, gin.H{
		"kind":   kind,
		"brand":  brand,
		"models": h.services.Catalog.Models(kind, brand),
	})
}

// @Summary      Search models
// @Description  Without a brand, every model is searched. Non-matching models are returned with hidden=true.
// @Tags         catalog
// @Produce      json
// @Param        kind   path      string  true   "Catalog"  Enums(repair,parts)
// @Param        q      query     string  false  "Case-insensitive substring"
// @Param        brand  query     string  false  "Restrict to brand"
// @Success      200    {object}  map[string]interface{}  "kind, brand, query, models"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/models/search [get]
func (h *Handler) searchModels(c *gin.Context) {
	kind := catalogKind(c)
	brand := c.Query("brand")
	q := strings.TrimSpace(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"kind":   kind,
		"brand":  brand,
		"query":  q,
		"models": h.services.Catalog.SearchModels(kind, brand, q),
	})
}

// @Summary      List service options
// @Description  An empty brand is back-filled from the first record of the model.
// @Tags         catalog
// @Produce      json
// @Param        kind   path      string  true   "Catalog"  Enums(repair,parts)
// @Param        brand  query     string  false  "Brand"
// @Param        model  query     string  true   "Model"
// @Success      200    {object}  map[string]interface{}  "kind, brand, model, options"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/options [get]
func (h *Handler) listOptions(c *gin.Context) {
	kind := catalogKind(c)
	model := c.Query("model")
	brand, options := h.services.Catalog.Options(kind, c.Query("brand"), model)
	c.JSON(http.StatusOK, gin.H{
		"kind":    kind,
		"brand":   brand,
		"model":   model,
		"options": options,
	})
}

// @Summary      Resolve the selector cascade
// @Tags         catalog
// @Produce      json
// @Param        kind     path      string  true   "Catalog"  Enums(repair,parts)
// @Param        brand    query     string  false  "Selected brand"
// @Param        model    query     string  false  "Selected model"
// @Param        option   query     int     false  "Selected option index"
// @Param        search   query     string  false  "Model search text"
// @Param        changed  query     string  false  "Control just changed"  Enums(brand,model,option,search)
// @Success      200      {object}  catalog.View
// @Failure      400      {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/view [get]
func (h *Handler) catalogView(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Catalog.View(catalogKind(c), selectionFromQuery(c)))
}

// @Summary      Catalog status
// @Tags         catalog
// @Produce      json
// @Param        kind  path      string  true  "Catalog"  Enums(repair,parts)
// @Success      200   {object}  models.CatalogStatus
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/status [get]
func (h *Handler) catalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Catalog.Status(catalogKind(c)))
}

// @Summary      Reload a catalog
// @Description  Queues a refetch of the sheet. With wait=true the sheet is fetched before responding.
// @Tags         catalog
// @Produce      json
// @Param        kind  path      string  true   "Catalog"  Enums(repair,parts)
// @Param        wait  query     bool    false  "Fetch synchronously"
// @Success      200   {object}  models.CatalogStatus
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/catalog/{kind}/reload [post]
func (h *Handler) reloadCatalog(c *gin.Context) {
	kind := catalogKind(c)
	if c.Query("wait") != "true" {
		h.services.CatalogLoader.Refresh(kind)
		c.JSON(http.StatusAccepted, gin.H{"status": statusQueued, "kind": kind})
		return
	}
	if err := h.services.CatalogLoader.Load(c.Request.Context(), kind); err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, errLoadCatalog, "catalog_reload_failed", err, "kind", kind)
		return
	}
	c.JSON(http.StatusOK, h.services.Catalog.Status(kind))
}
