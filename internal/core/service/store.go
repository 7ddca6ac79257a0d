package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/port"
)

var _ port.CatalogReader = (*CatalogStore)(nil)

// A CatalogStore holds the normalized catalog for the whole process
// lifetime. The first consumer triggers the fetch, concurrent consumers
// attach to the single in-flight fetch, and once loaded no further
// network activity happens. A failed fetch leaves the store empty; the
// next independent call starts over.
type CatalogStore struct {
	fetcher port.CatalogFetcher

	mu       sync.Mutex
	loaded   bool
	inflight chan struct{}
	loadErr  error
	products []domain.Product
	brands   []string
}

func NewCatalogStore(fetcher port.CatalogFetcher) *CatalogStore {
	return &CatalogStore{fetcher: fetcher}
}

// EnsureLoaded returns the catalog, fetching it on first use. Callers
// must treat the returned slice as read-only.
func (s *CatalogStore) EnsureLoaded(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogStore.EnsureLoaded"

	for {
		s.mu.Lock()
		if s.loaded {
			ps := s.products
			s.mu.Unlock()
			return ps, nil
		}

		if s.inflight == nil {
			done := make(chan struct{})
			s.inflight = done
			s.mu.Unlock()
			return s.load(ctx, done)
		}

		wait := s.inflight
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-wait:
		}

		s.mu.Lock()
		loaded, err, ps := s.loaded, s.loadErr, s.products
		s.mu.Unlock()

		if loaded {
			return ps, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		// a fresh fetch replaced the failed one, wait again
	}
}

// Brands returns the sorted distinct brand set of the loaded catalog.
func (s *CatalogStore) Brands(ctx context.Context) ([]string, error) {
	const op = "CatalogStore.Brands"

	if _, err := s.EnsureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brands, nil
}

func (s *CatalogStore) load(
	ctx context.Context, done chan struct{},
) ([]domain.Product, error) {
	const op = "CatalogStore.load"
	log := slog.With("op", op)

	rs, fetchErr := s.fetcher.FetchCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(done)
	s.inflight = nil

	if fetchErr != nil {
		s.loadErr = fmt.Errorf("%s: %w", op, fetchErr)
		log.Error("failed to load catalog", "err", fetchErr)
		return nil, s.loadErr
	}

	s.products = Normalize(rs)
	s.brands = distinctBrands(s.products)
	s.loaded = true
	s.loadErr = nil

	log.Info("catalog loaded",
		"nProducts", len(s.products), "nBrands", len(s.brands))
	return s.products, nil
}

func distinctBrands(ps []domain.Product) []string {
	brands := make([]string, 0, len(ps))
	for _, p := range ps {
		brands = append(brands, p.Brand)
	}
	slices.Sort(brands)
	return slices.Compact(brands)
}
