package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func seededStore(t *testing.T) *CatalogStore {
	t.Helper()
	store := NewCatalogStore()
	store.Replace(models.CatalogRepair, catalog.Parse(
		"Brand,Model,Option,Price\n"+
			"Apple,iPhone 12,Screen Repair,199\n"+
			"Apple,iPhone 12,Battery,49\n"+
			"Samsung,Galaxy S21,Screen Repair,179\n"+
			"Apple,iPad,Battery,89\n"+
			"bad,row\n",
	), time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	return store
}

func TestCatalogStore_StatusAndFailureKeepsRecords(t *testing.T) {
	store := seededStore(t)

	st := store.Status(models.CatalogRepair)
	if !st.Loaded || st.Records != 4 || st.Skipped != 1 || st.Brands != 2 {
		t.Fatalf("unexpected status: %+v", st)
	}

	store.MarkFailed(models.CatalogRepair, errors.New("timeout"))
	st = store.Status(models.CatalogRepair)
	if st.Records != 4 || st.LastError != "timeout" {
		t.Fatalf("failure should keep records and note the error: %+v", st)
	}

	if empty := store.Status(models.CatalogParts); empty.Loaded || empty.Records != 0 || empty.Kind != models.CatalogParts {
		t.Fatalf("unloaded kind status: %+v", empty)
	}
	if recs := store.Records(models.CatalogParts); recs != nil {
		t.Fatalf("expected nil records before first load, got %v", recs)
	}
}

func TestCatalogService_KindForPath(t *testing.T) {
	svc := NewCatalogService(NewCatalogStore(), "")
	cases := map[string]models.CatalogKind{
		"/":            models.CatalogRepair,
		"/index.html":  models.CatalogRepair,
		"/parts":       models.CatalogParts,
		"/parts.html":  models.CatalogParts,
		"/shop/parts/": models.CatalogParts,
	}
	for path, want := range cases {
		if got := svc.KindForPath(path); got != want {
			t.Fatalf("KindForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestCatalogService_Derivations(t *testing.T) {
	svc := NewCatalogService(seededStore(t), "parts")

	if got := svc.Brands(models.CatalogRepair); !reflect.DeepEqual(got, []string{"Apple", "Samsung"}) {
		t.Fatalf("Brands = %v", got)
	}
	if got := svc.Models(models.CatalogRepair, "Apple"); !reflect.DeepEqual(got, []string{"iPhone 12", "iPad"}) {
		t.Fatalf("Models = %v", got)
	}

	brand, opts := svc.Options(models.CatalogRepair, "", "Galaxy S21")
	if brand != "Samsung" || len(opts) != 1 || opts[0].Price != "179" {
		t.Fatalf("Options back-fill = %q %+v", brand, opts)
	}

	all := svc.SearchModels(models.CatalogRepair, "", "ip")
	if len(all) != 3 || !all[1].Hidden || all[0].Hidden || all[2].Hidden {
		t.Fatalf("SearchModels(all) = %+v", all)
	}
	if none := svc.SearchModels(models.CatalogRepair, "", ""); len(none) != 0 {
		t.Fatalf("no brand and no query should list nothing, got %+v", none)
	}
	scoped := svc.SearchModels(models.CatalogRepair, "Samsung", "ip")
	if len(scoped) != 1 || !scoped[0].Hidden {
		t.Fatalf("SearchModels(Samsung) = %+v", scoped)
	}

	v := svc.View(models.CatalogRepair, catalog.Selection{Brand: "Apple", Model: "iPhone 12", Option: 1})
	if v.Price != "49" || v.Service != "Battery" {
		t.Fatalf("View = %+v", v)
	}
	if empty := svc.View(models.CatalogParts, catalog.Selection{Option: catalog.NoOption}); len(empty.Brands) != 0 {
		t.Fatalf("parts catalog not loaded yet, got %+v", empty.Brands)
	}
}
