package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/models"
)

func newTestLoader(store *CatalogStore, repairURL string) *CatalogLoaderService {
	l := NewCatalogLoaderService(store, config.CatalogConfig{
		RepairURL: repairURL,
		PartsURL:  repairURL + "?output=csv",
	}, nil)
	l.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return l
}

func TestCatalogLoader_SheetURLAppendsTimestamp(t *testing.T) {
	l := newTestLoader(NewCatalogStore(), "http://sheets.test/repair")

	u, err := l.SheetURL(models.CatalogRepair)
	if err != nil || u != "http://sheets.test/repair?t=1700000000123" {
		t.Fatalf("SheetURL(repair) = %q, %v", u, err)
	}
	u, err = l.SheetURL(models.CatalogParts)
	if err != nil || u != "http://sheets.test/repair?output=csv&t=1700000000123" {
		t.Fatalf("SheetURL(parts) = %q, %v", u, err)
	}
	if _, err := l.SheetURL("bogus"); !errors.Is(err, ErrUnknownCatalog) {
		t.Fatalf("expected ErrUnknownCatalog, got %v", err)
	}
}

func TestCatalogLoader_LoadReplacesRecords(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("t")
		_, _ = w.Write([]byte("Brand,Model,Option,Price\nApple,iPhone 12,Battery,49\n"))
	}))
	defer srv.Close()

	store := NewCatalogStore()
	l := newTestLoader(store, srv.URL).WithHTTPClient(srv.Client())

	if err := l.Load(context.Background(), models.CatalogRepair); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotQuery != "1700000000123" {
		t.Fatalf("cache-busting param = %q", gotQuery)
	}
	recs := store.Records(models.CatalogRepair)
	if len(recs) != 1 || recs[0].Price != "49" {
		t.Fatalf("records = %+v", recs)
	}
	if st := store.Status(models.CatalogRepair); !st.Loaded || st.LoadedAt.IsZero() {
		t.Fatalf("status = %+v", st)
	}
}

func TestCatalogLoader_FailureKeepsPreviousRecords(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "gone", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("h\nApple,iPhone 12,Battery,49\nApple,iPad,Screen,99\n"))
	}))
	defer srv.Close()

	store := NewCatalogStore()
	l := newTestLoader(store, srv.URL).WithHTTPClient(srv.Client())
	if err := l.Load(context.Background(), models.CatalogRepair); err != nil {
		t.Fatalf("first Load() error = %v", err)
	}

	fail.Store(true)
	err := l.Load(context.Background(), models.CatalogRepair)
	if err == nil || !strings.Contains(err.Error(), "unexpected status 500") {
		t.Fatalf("expected status error, got %v", err)
	}
	if n := len(store.Records(models.CatalogRepair)); n != 2 {
		t.Fatalf("previous records lost, have %d", n)
	}
	if st := store.Status(models.CatalogRepair); st.LastError == "" {
		t.Fatalf("last error not recorded: %+v", st)
	}
}

type failingDoer struct{ calls int }

func (f *failingDoer) Do(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("dial tcp: no route to host")
}

func TestCatalogLoader_TransportErrorLeavesStoreEmpty(t *testing.T) {
	store := NewCatalogStore()
	doer := &failingDoer{}
	l := newTestLoader(store, "http://sheets.test/repair").WithHTTPClient(doer)

	if err := l.Load(context.Background(), models.CatalogRepair); err == nil {
		t.Fatalf("expected error")
	}
	if doer.calls != 1 {
		t.Fatalf("expected exactly one attempt (no retry), got %d", doer.calls)
	}
	if recs := store.Records(models.CatalogRepair); len(recs) != 0 {
		t.Fatalf("store should stay empty, got %+v", recs)
	}
}

func TestCatalogLoader_RunServesRefresh(t *testing.T) {
	hits := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("h\nSamsung,S21,Screen Repair,179\n"))
		hits <- struct{}{}
	}))
	defer srv.Close()

	store := NewCatalogStore()
	l := newTestLoader(store, srv.URL).WithHTTPClient(srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	l.Refresh(models.CatalogRepair)

	select {
	case <-hits:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresh never fetched the sheet")
	}
	deadline := time.Now().Add(2 * time.Second)
	for !store.Status(models.CatalogRepair).Loaded {
		if time.Now().After(deadline) {
			t.Fatalf("store not populated after refresh")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCatalogLoader_RefreshNeverBlocks(t *testing.T) {
	l := newTestLoader(NewCatalogStore(), "http://sheets.test/repair")
	done := make(chan struct{})
	go func() {
		for i := 0; i < refreshQueueSize*3; i++ {
			l.Refresh(models.CatalogParts)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Refresh blocked without a running loop")
	}
}
