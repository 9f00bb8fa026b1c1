package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/models"

	"golang.org/x/sync/singleflight"
)

// refreshQueueSize bounds pending refresh requests; extra requests are
// dropped since an in-flight or queued load already covers them.
const refreshQueueSize = 16

var (
	ErrUnknownCatalog = errors.New("unknown catalog")
	errEmptySheetURL  = errors.New("sheet url is empty")
)

// HTTPDoer is the subset of *http.Client the loader needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type CatalogLoaderService struct {
	store    *CatalogStore
	client   HTTPDoer
	log      *logger.Logger
	urls     map[models.CatalogKind]string
	timeout  time.Duration
	now      func() time.Time
	group    singleflight.Group
	requests chan models.CatalogKind
}

func NewCatalogLoaderService(store *CatalogStore, cfg config.CatalogConfig, log *logger.Logger) *CatalogLoaderService {
	return &CatalogLoaderService{
		store:  store,
		client: http.DefaultClient,
		log:    log,
		urls: map[models.CatalogKind]string{
			models.CatalogRepair: cfg.RepairURL,
			models.CatalogParts:  cfg.PartsURL,
		},
		timeout:  cfg.FetchTimeout,
		now:      time.Now,
		requests: make(chan models.CatalogKind, refreshQueueSize),
	}
}

// WithHTTPClient swaps the transport used for sheet fetches.
func (l *CatalogLoaderService) WithHTTPClient(c HTTPDoer) *CatalogLoaderService {
	l.client = c
	return l
}

// SheetURL returns the sheet address for kind with a millisecond cache-busting
// "t" parameter appended.
func (l *CatalogLoaderService) SheetURL(kind models.CatalogKind) (string, error) {
	base, ok := l.urls[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCatalog, kind)
	}
	if base == "" {
		return "", fmt.Errorf("%s: %w", kind, errEmptySheetURL)
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "t=" + strconv.FormatInt(l.now().UnixMilli(), 10), nil
}

// Load fetches and parses one sheet and replaces the stored records. On any
// failure the previous records stay in place. Concurrent loads of the same
// kind share a single fetch.
func (l *CatalogLoaderService) Load(ctx context.Context, kind models.CatalogKind) error {
	_, err, _ := l.group.Do(string(kind), func() (any, error) {
		return nil, l.load(ctx, kind)
	})
	return err
}

func (l *CatalogLoaderService) load(ctx context.Context, kind models.CatalogKind) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	text, err := l.fetch(ctx, kind)
	if err != nil {
		if !errors.Is(err, ErrUnknownCatalog) {
			l.store.MarkFailed(kind, err)
		}
		return err
	}

	res := catalog.Parse(text)
	l.store.Replace(kind, res, l.now())
	if l.log != nil {
		l.log.Infow("catalog_loaded", "kind", kind, "records", len(res.Records), "skipped", res.Skipped)
	}
	return nil
}

func (l *CatalogLoaderService) fetch(ctx context.Context, kind models.CatalogKind) (string, error) {
	u, err := l.SheetURL(kind)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build sheet request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s sheet: %w", kind, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s sheet: unexpected status %d", kind, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s sheet: %w", kind, err)
	}
	return string(body), nil
}

// Refresh queues an asynchronous load of kind. It never blocks.
func (l *CatalogLoaderService) Refresh(kind models.CatalogKind) {
	select {
	case l.requests <- kind:
	default:
	}
}

// Run serves Refresh requests until ctx is canceled.
func (l *CatalogLoaderService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case kind := <-l.requests:
			go l.loadLogged(ctx, kind)
		}
	}
}

func (l *CatalogLoaderService) loadLogged(ctx context.Context, kind models.CatalogKind) {
	if err := l.Load(ctx, kind); err != nil && l.log != nil {
		l.log.Errorw("catalog_load_failed", "kind", kind, "err", err)
	}
}
