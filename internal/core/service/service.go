package service

import (
	"context"
	"fmt"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/port"
)

var _ port.ProductsBrowser = (*Service)(nil)
var _ port.FeaturedBrowser = (*Service)(nil)
var _ port.CartAdder = (*Service)(nil)

type Service struct {
	catalog     port.CatalogReader
	cartEvents  port.CartEventProducer
	renderer    Renderer
	topPerBrand int
	slideSize   int
}

func New(
	catalog port.CatalogReader,
	cartEvents port.CartEventProducer,
	renderer Renderer,
	topPerBrand int,
	slideSize int,
) Service {
	return Service{
		catalog,
		cartEvents,
		renderer,
		topPerBrand,
		slideSize,
	}
}

// BrowseProducts loads the catalog on first use, filters it with the
// given criteria and renders the grid view.
func (s Service) BrowseProducts(
	ctx context.Context, c domain.FilterCriteria,
) (domain.GridView, error) {
	const op = "Service.BrowseProducts"

	ps, err := s.catalog.EnsureLoaded(ctx)
	if err != nil {
		return domain.GridView{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.renderer.RenderGrid(FilterProducts(ps, c)), nil
}

// FeaturedCarousel renders the brand-capped promotion carousel.
func (s Service) FeaturedCarousel(
	ctx context.Context,
) (domain.CarouselView, error) {
	const op = "Service.FeaturedCarousel"

	ps, err := s.catalog.EnsureLoaded(ctx)
	if err != nil {
		return domain.CarouselView{}, fmt.Errorf("%s: %w", op, err)
	}

	featured := SelectFeatured(ps, s.topPerBrand)
	return s.renderer.RenderCarousel(
		PartitionSlides(featured, s.slideSize),
	), nil
}

// Brands returns the sorted distinct brand set for filter controls.
func (s Service) Brands(ctx context.Context) ([]string, error) {
	const op = "Service.Brands"

	brands, err := s.catalog.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return brands, nil
}

// AddToCart emits a cart event for the product addressed by its model
// name. Cart mechanics live elsewhere, the event is the whole surface.
func (s Service) AddToCart(ctx context.Context, model string) error {
	const op = "Service.AddToCart"

	ps, err := s.catalog.EnsureLoaded(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p, ok := findByModel(ps, model)
	if !ok {
		return fmt.Errorf("%s: %w: %q", op, domain.ErrUnknownProduct, model)
	}

	ev := domain.CartEvent{Model: p.Model, Brand: p.Brand, Price: p.Price}
	if err := s.cartEvents.ProduceCartEvent(ctx, ev); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func findByModel(ps []domain.Product, model string) (domain.Product, bool) {
	for _, p := range ps {
		if p.Model == model {
			return p, true
		}
	}
	return domain.Product{}, false
}
