package service

import (
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

const defaultPartsMarker = "parts"

type CatalogService struct {
	store       *CatalogStore
	partsMarker string
}

func NewCatalogService(store *CatalogStore, partsMarker string) *CatalogService {
	if partsMarker == "" {
		partsMarker = defaultPartsMarker
	}
	return &CatalogService{store: store, partsMarker: partsMarker}
}

// KindForPath picks the parts sheet when the page path carries the parts
// marker ("/parts", "/parts.html"), the repair sheet otherwise.
func (s *CatalogService) KindForPath(path string) models.CatalogKind {
	if strings.Contains(path, s.partsMarker) {
		return models.CatalogParts
	}
	return models.CatalogRepair
}

func (s *CatalogService) View(kind models.CatalogKind, sel catalog.Selection) catalog.View {
	return catalog.Resolve(s.store.Records(kind), sel)
}

func (s *CatalogService) Brands(kind models.CatalogKind) []string {
	return catalog.Brands(s.store.Records(kind))
}

func (s *CatalogService) Models(kind models.CatalogKind, brand string) []string {
	return catalog.Models(s.store.Records(kind), brand)
}

// SearchModels filters the brand's models, or every model when brand is
// empty and a query is given.
func (s *CatalogService) SearchModels(kind models.CatalogKind, brand, query string) []catalog.ModelOption {
	records := s.store.Records(kind)
	var names []string
	switch {
	case brand != "":
		names = catalog.Models(records, brand)
	case query != "":
		names = catalog.AllModels(records)
	}
	return catalog.FilterModels(names, query)
}

// Options returns the options for (brand, model), back-filling brand from the
// first record of model when brand is empty. The resolved brand is returned.
func (s *CatalogService) Options(kind models.CatalogKind, brand, model string) (string, []catalog.Option) {
	records := s.store.Records(kind)
	if brand == "" && model != "" {
		if b, ok := catalog.BrandForModel(records, model); ok {
			brand = b
		}
	}
	return brand, catalog.Options(records, brand, model)
}

func (s *CatalogService) Status(kind models.CatalogKind) models.CatalogStatus {
	return s.store.Status(kind)
}
