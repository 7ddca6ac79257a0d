package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReader struct {
	mock.Mock
}

func (r *MockCatalogReader) EnsureLoaded(
	ctx context.Context,
) ([]domain.Product, error) {
	args := r.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *MockCatalogReader) Brands(ctx context.Context) ([]string, error) {
	args := r.Called(ctx)
	if brands := args.Get(0); brands != nil {
		return brands.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartEventProducer struct {
	mock.Mock
}

func (p *MockCartEventProducer) ProduceCartEvent(
	ctx context.Context, ev domain.CartEvent,
) error {
	args := p.Called(ctx, ev)
	return args.Error(0)
}

func (p *MockCartEventProducer) Close() {
	p.Called()
}

func newService(
	catalog *MockCatalogReader, cartEvents *MockCartEventProducer,
) service.Service {
	return service.New(
		catalog, cartEvents, service.NewRenderer(placeholder), 2, 3,
	)
}

func TestServiceBrowseProducts(t *testing.T) {
	t.Run("FiltersAndRenders", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).Return(catalogFixture(), nil)

		s := newService(catalog, new(MockCartEventProducer))
		v, err := s.BrowseProducts(t.Context(), domain.FilterCriteria{
			Brand: "Apple", MaxPrice: 200000,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, v.Total)
		require.Len(t, v.Cards, 1)
		assert.Equal(t, "iPhone 15", v.Cards[0].Model)
	})

	t.Run("LoadFailureSurfaces", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).
			Return(nil, domain.ErrCatalogUnavailable)

		s := newService(catalog, new(MockCartEventProducer))
		_, err := s.BrowseProducts(t.Context(), domain.FilterCriteria{
			MaxPrice: 200000,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestServiceFeaturedCarousel(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).Return(catalogFixture(), nil)

		s := newService(catalog, new(MockCartEventProducer))
		v, err := s.FeaturedCarousel(t.Context())

		require.NoError(t, err)
		// 2 Samsung + 1 Apple + 1 Xiaomi featured, slide size 3
		require.Len(t, v.Slides, 2)
		assert.True(t, v.Slides[0].Active)
	})

	t.Run("EmptyCatalogRendersNothing", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).
			Return([]domain.Product{}, nil)

		s := newService(catalog, new(MockCartEventProducer))
		v, err := s.FeaturedCarousel(t.Context())

		require.NoError(t, err)
		assert.Empty(t, v.Slides)
	})
}

func TestServiceAddToCart(t *testing.T) {
	t.Run("ProducesEvent", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).Return(catalogFixture(), nil)

		cartEvents := new(MockCartEventProducer)
		cartEvents.On("ProduceCartEvent", mock.Anything, domain.CartEvent{
			Model: "Galaxy S24", Brand: "Samsung", Price: 74999,
		}).Return(nil)

		s := newService(catalog, cartEvents)
		err := s.AddToCart(t.Context(), "Galaxy S24")

		require.NoError(t, err)
		cartEvents.AssertExpectations(t)
	})

	t.Run("UnknownModel", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).Return(catalogFixture(), nil)

		s := newService(catalog, new(MockCartEventProducer))
		err := s.AddToCart(t.Context(), "Nokia 3310")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownProduct)
	})

	t.Run("ProducerFailureSurfaces", func(t *testing.T) {
		catalog := new(MockCatalogReader)
		catalog.On("EnsureLoaded", mock.Anything).Return(catalogFixture(), nil)

		produceErr := errors.New("broker down")
		cartEvents := new(MockCartEventProducer)
		cartEvents.On("ProduceCartEvent", mock.Anything, mock.Anything).
			Return(produceErr)

		s := newService(catalog, cartEvents)
		err := s.AddToCart(t.Context(), "Galaxy S24")

		require.Error(t, err)
		assert.ErrorIs(t, err, produceErr)
	})
}
