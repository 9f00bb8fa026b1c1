package service

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/repository"
)

// Catalog exposes read-only cascade derivations over the loaded sheets.
type Catalog interface {
	KindForPath(path string) models.CatalogKind
	View(kind models.CatalogKind, sel catalog.Selection) catalog.View
	Brands(kind models.CatalogKind) []string
	Models(kind models.CatalogKind, brand string) []string
	SearchModels(kind models.CatalogKind, brand, query string) []catalog.ModelOption
	Options(kind models.CatalogKind, brand, model string) (string, []catalog.Option)
	Status(kind models.CatalogKind) models.CatalogStatus
}

// CatalogLoader fetches published sheets into the store.
// Run must be started for Refresh requests to be served; stop it via ctx.
type CatalogLoader interface {
	Load(ctx context.Context, kind models.CatalogKind) error
	Refresh(kind models.CatalogKind)
	Run(ctx context.Context)
}

// Inquiry composes the WhatsApp message and deep link.
type Inquiry interface {
	Compose(req InquiryRequest) models.Inquiry
}

// Theme manages the persisted light/dark preference per visitor.
type Theme interface {
	Init(ctx context.Context, visitorID string) (models.Theme, error)
	Current(ctx context.Context, visitorID string) (models.Theme, error)
	Set(ctx context.Context, visitorID string, theme models.Theme) error
	Toggle(ctx context.Context, visitorID string) (models.Theme, error)
}

// Session signs and verifies the session-only cookie payload.
type Session interface {
	Issue(st models.SessionState) (string, error)
	Parse(token string) (models.SessionState, error)
}

// Leads records contact details submitted through the popup.
type Leads interface {
	Capture(ctx context.Context, lead models.Lead) (models.Lead, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Catalog
	CatalogLoader
	Inquiry
	Theme
	Session
	Leads
}

// NewService wires the repository layer and configuration into concrete services.
func NewService(repos *repository.Repository, cfg config.Config, log *logger.Logger) (*Service, error) {
	store := NewCatalogStore()

	session, err := NewSessionService(cfg.Session.SigningKey, log)
	if err != nil {
		return nil, err
	}

	return &Service{
		Catalog:       NewCatalogService(store, cfg.Catalog.PartsMarker),
		CatalogLoader: NewCatalogLoaderService(store, cfg.Catalog, log),
		Inquiry:       NewInquiryService(cfg.Inquiry),
		Theme:         NewThemeService(repos.Preferences),
		Session:       session,
		Leads:         NewLeadService(log),
	}, nil
}
