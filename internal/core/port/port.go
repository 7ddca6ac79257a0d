package port

import (
	"context"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
)

// CatalogFetcher reads the full raw catalog from the remote source.
type CatalogFetcher interface {
	FetchCatalog(context.Context) ([]domain.RawRecord, error)
}

// CatalogReader exposes the loaded catalog to consumers. Implementations
// load lazily on first use and never refetch while loaded.
type CatalogReader interface {
	EnsureLoaded(context.Context) ([]domain.Product, error)
	Brands(context.Context) ([]string, error)
}

type ProductsBrowser interface {
	BrowseProducts(context.Context, domain.FilterCriteria) (domain.GridView, error)
	Brands(context.Context) ([]string, error)
}

type FeaturedBrowser interface {
	FeaturedCarousel(context.Context) (domain.CarouselView, error)
}

type CartAdder interface {
	AddToCart(ctx context.Context, model string) error
}

type CartEventProducer interface {
	ProduceCartEvent(context.Context, domain.CartEvent) error
	Close()
}
