package handlers

import (
	"embed"
	"html/template"

	_ "storefront/docs"
	"storefront/internal/logger"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services      *service.Service
	log           *logger.Logger
	secureCookies bool
}

// Option customizes a Handler.
type Option func(*Handler)

// WithSecureCookies marks every cookie the handler sets as Secure.
func WithSecureCookies(secure bool) Option {
	return func(h *Handler) { h.secureCookies = secure }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(pageTemplates)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// Catalog status stream, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	pages := r.Group("/", h.visitorMiddleware, h.sessionMiddleware)
	{
		pages.GET("/", h.storefrontPage)
		pages.GET("/index.html", h.storefrontPage)
		pages.GET("/parts", h.storefrontPage)
		pages.GET("/parts.html", h.storefrontPage)

		pages.POST("/inquiry", h.submitInquiry)
		pages.POST("/theme/toggle", h.toggleThemePage)
		pages.POST("/lead", h.submitLead)
		pages.POST("/lead/dismiss", h.dismissLead)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerCatalogRoutes(api)
		api.POST("/inquiry", h.composeInquiry)

		theme := api.Group("/theme", h.visitorMiddleware)
		{
			theme.GET("", h.getTheme)
			theme.POST("/toggle", h.toggleTheme)
		}

		api.POST("/leads", h.sessionMiddleware, h.captureLead)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	cat := api.Group("/catalog/:kind", h.catalogKindMiddleware)
	{
		cat.GET("/brands", h.listBrands)
		cat.GET("/models", h.listModels)
		cat.GET("/models/search", h.searchModels)
		cat.GET("/options", h.listOptions)
		cat.GET("/view", h.catalogView)
		cat.GET("/status", h.catalogStatus)
		cat.POST("/reload", h.reloadCatalog)
	}
}
