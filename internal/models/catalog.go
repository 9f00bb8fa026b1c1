package models

import (
	"strings"
	"time"
)

// CatalogKind names one of the published sheets.
type CatalogKind string

const (
	CatalogRepair CatalogKind = "repair"
	CatalogParts  CatalogKind = "parts"
)

// CatalogKinds lists every known sheet in preload order.
var CatalogKinds = []CatalogKind{CatalogRepair, CatalogParts}

// ParseCatalogKind accepts "repair" or "parts" (case-insensitive).
func ParseCatalogKind(s string) (CatalogKind, bool) {
	switch CatalogKind(strings.ToLower(strings.TrimSpace(s))) {
	case CatalogRepair:
		return CatalogRepair, true
	case CatalogParts:
		return CatalogParts, true
	default:
		return "", false
	}
}

// CatalogStatus is a snapshot of one sheet slot in the store.
type CatalogStatus struct {
	Kind      CatalogKind `json:"kind"`
	Loaded    bool        `json:"loaded"`
	Records   int         `json:"records"`
	Skipped   int         `json:"skipped"`
	Brands    int         `json:"brands"`
	LoadedAt  time.Time   `json:"loaded_at,omitempty"`
	LastError string      `json:"last_error,omitempty"`
}
