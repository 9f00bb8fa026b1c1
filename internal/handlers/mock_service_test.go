package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCatalog struct {
	view    catalog.View
	brands  []string
	models  []string
	search  []catalog.ModelOption
	brand   string
	options []catalog.Option
	status  models.CatalogStatus

	lastKind  models.CatalogKind
	lastSel   catalog.Selection
	lastBrand string
	lastModel string
	lastQuery string
}

func (m *mockCatalog) KindForPath(path string) models.CatalogKind {
	if strings.Contains(path, "parts") {
		return models.CatalogParts
	}
	return models.CatalogRepair
}
func (m *mockCatalog) View(kind models.CatalogKind, sel catalog.Selection) catalog.View {
	m.lastKind = kind
	m.lastSel = sel
	return m.view
}
func (m *mockCatalog) Brands(kind models.CatalogKind) []string {
	m.lastKind = kind
	return m.brands
}
func (m *mockCatalog) Models(kind models.CatalogKind, brand string) []string {
	m.lastKind = kind
	m.lastBrand = brand
	return m.models
}
func (m *mockCatalog) SearchModels(kind models.CatalogKind, brand, query string) []catalog.ModelOption {
	m.lastKind = kind
	m.lastBrand = brand
	m.lastQuery = query
	return m.search
}
func (m *mockCatalog) Options(kind models.CatalogKind, brand, model string) (string, []catalog.Option) {
	m.lastKind = kind
	m.lastBrand = brand
	m.lastModel = model
	if m.brand != "" {
		brand = m.brand
	}
	return brand, m.options
}
func (m *mockCatalog) Status(kind models.CatalogKind) models.CatalogStatus {
	st := m.status
	st.Kind = kind
	return st
}

type mockLoader struct {
	loadErr   error
	loads     []models.CatalogKind
	refreshed []models.CatalogKind
}

func (m *mockLoader) Load(ctx context.Context, kind models.CatalogKind) error {
	m.loads = append(m.loads, kind)
	return m.loadErr
}
func (m *mockLoader) Refresh(kind models.CatalogKind) {
	m.refreshed = append(m.refreshed, kind)
}
func (m *mockLoader) Run(ctx context.Context) {}

type mockInquiry struct {
	resp    models.Inquiry
	lastReq service.InquiryRequest
	calls   int
}

func (m *mockInquiry) Compose(req service.InquiryRequest) models.Inquiry {
	m.calls++
	m.lastReq = req
	return m.resp
}

type mockTheme struct {
	theme      models.Theme
	initErr    error
	toggleErr  error
	toggles    int
	lastVisits []string
}

func (m *mockTheme) Init(ctx context.Context, visitorID string) (models.Theme, error) {
	m.lastVisits = append(m.lastVisits, visitorID)
	if m.initErr != nil {
		return models.DefaultTheme, m.initErr
	}
	return m.current(), nil
}
func (m *mockTheme) Current(ctx context.Context, visitorID string) (models.Theme, error) {
	return m.current(), nil
}
func (m *mockTheme) Set(ctx context.Context, visitorID string, theme models.Theme) error {
	m.theme = theme
	return nil
}
func (m *mockTheme) Toggle(ctx context.Context, visitorID string) (models.Theme, error) {
	m.lastVisits = append(m.lastVisits, visitorID)
	if m.toggleErr != nil {
		return m.current(), m.toggleErr
	}
	m.toggles++
	m.theme = m.current().Other()
	return m.theme, nil
}
func (m *mockTheme) current() models.Theme {
	if m.theme == "" {
		return models.DefaultTheme
	}
	return m.theme
}

type mockLeads struct {
	err   error
	last  models.Lead
	calls int
}

func (m *mockLeads) Capture(ctx context.Context, lead models.Lead) (models.Lead, error) {
	m.calls++
	m.last = lead
	if m.err != nil {
		return models.Lead{}, m.err
	}
	lead.ID = "lead-1"
	if lead.Shop == "" {
		lead.Shop = models.DefaultShop
	}
	return lead, nil
}

// ---- Shared Test Helpers ----

// newTestServices fills every service with a mock (and a real session
// signer) so each test only overrides what it inspects.
func newTestServices() *service.Service {
	session, _ := service.NewSessionService("test-signing-key", nil)
	return &service.Service{
		Catalog:       &mockCatalog{},
		CatalogLoader: &mockLoader{},
		Inquiry:       &mockInquiry{},
		Theme:         &mockTheme{},
		Session:       session,
		Leads:         &mockLeads{},
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

var errBoom = errors.New("boom")
