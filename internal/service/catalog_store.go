package service

import (
	"sync"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// CatalogStore holds the parsed records of each sheet. Records are replaced
// wholesale and never mutated, so readers may keep the slice they got.
type CatalogStore struct {
	mu    sync.RWMutex
	slots map[models.CatalogKind]*catalogSlot
}

type catalogSlot struct {
	records  []models.ServiceRecord
	skipped  int
	loaded   bool
	loadedAt time.Time
	lastErr  string
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{slots: make(map[models.CatalogKind]*catalogSlot)}
}

// slot returns the slot for kind, creating it. Caller holds the write lock.
func (s *CatalogStore) slot(kind models.CatalogKind) *catalogSlot {
	sl, ok := s.slots[kind]
	if !ok {
		sl = &catalogSlot{}
		s.slots[kind] = sl
	}
	return sl
}

// Replace swaps in a freshly parsed sheet.
func (s *CatalogStore) Replace(kind models.CatalogKind, res catalog.Result, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slot(kind)
	sl.records = res.Records
	sl.skipped = res.Skipped
	sl.loaded = true
	sl.loadedAt = at.UTC()
	sl.lastErr = ""
}

// MarkFailed records a failed load and keeps the previous records.
func (s *CatalogStore) MarkFailed(kind models.CatalogKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot(kind).lastErr = err.Error()
}

// Records returns the current records of kind (nil before the first load).
func (s *CatalogStore) Records(kind models.CatalogKind) []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[kind]; ok {
		return sl.records
	}
	return nil
}

func (s *CatalogStore) Status(kind models.CatalogKind) models.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.CatalogStatus{Kind: kind}
	sl, ok := s.slots[kind]
	if !ok {
		return st
	}
	st.Loaded = sl.loaded
	st.Records = len(sl.records)
	st.Skipped = sl.skipped
	st.Brands = len(catalog.Brands(sl.records))
	st.LoadedAt = sl.loadedAt
	st.LastError = sl.lastErr
	return st
}
