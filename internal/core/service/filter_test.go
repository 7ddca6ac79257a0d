package service_test

import (
	"testing"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockOf(s domain.StockState) *domain.StockState {
	return &s
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{Brand: "Samsung", Model: "Galaxy S24", Price: 74999, Stock: domain.StockAvailable},
		{Brand: "Samsung", Model: "Galaxy A55", Price: 39999, Stock: domain.StockUnavailable},
		{Brand: "Apple", Model: "iPhone 15", Price: 79900, Stock: domain.StockAvailable},
		{Brand: "Xiaomi", Model: "Redmi Note 13", Price: 17999, Stock: domain.StockAvailable},
	}
}

func TestFilterProducts(t *testing.T) {
	anyPrice := 200000.0

	t.Run("DefaultsMatchEverything", func(t *testing.T) {
		ps := catalogFixture()
		got := service.FilterProducts(ps, domain.FilterCriteria{MaxPrice: anyPrice})
		assert.Equal(t, ps, got)
	})

	t.Run("BrandExactMatch", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			Brand: "Samsung", MaxPrice: anyPrice,
		})
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, "Samsung", p.Brand)
		}
	})

	t.Run("BrandIsCaseSensitive", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			Brand: "samsung", MaxPrice: anyPrice,
		})
		assert.Empty(t, got)
	})

	t.Run("PriceBoundaryIsInclusive", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: 74999,
		})
		models := modelsOf(got)
		assert.Contains(t, models, "Galaxy S24")
		assert.NotContains(t, models, "iPhone 15")
	})

	t.Run("PriceBelowEveryProduct", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: 1,
		})
		assert.Empty(t, got)
	})

	t.Run("StockMatch", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: anyPrice, Stock: stockOf(domain.StockUnavailable),
		})
		require.Len(t, got, 1)
		assert.Equal(t, "Galaxy A55", got[0].Model)
	})

	t.Run("SearchIsCaseInsensitiveOverModelOrBrand", func(t *testing.T) {
		byBrand := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: anyPrice, SearchText: "sam",
		})
		require.Len(t, byBrand, 2)
		assert.Equal(t, "Samsung", byBrand[0].Brand)

		byModel := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: anyPrice, SearchText: "REDMI",
		})
		require.Len(t, byModel, 1)
		assert.Equal(t, "Redmi Note 13", byModel[0].Model)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got := service.FilterProducts(nil, domain.FilterCriteria{MaxPrice: anyPrice})
		assert.Empty(t, got)
	})

	t.Run("CombinationEqualsIntersectionOfClauses", func(t *testing.T) {
		ps := catalogFixture()
		c := domain.FilterCriteria{
			Brand:      "Samsung",
			MaxPrice:   75000,
			Stock:      stockOf(domain.StockAvailable),
			SearchText: "galaxy",
		}

		var intersection []domain.Product
		for _, p := range ps {
			if service.MatchesBrand(p, c) &&
				service.MatchesPrice(p, c) &&
				service.MatchesStock(p, c) &&
				service.MatchesSearch(p, c) {
				intersection = append(intersection, p)
			}
		}

		assert.Equal(t, intersection, service.FilterProducts(ps, c))
	})

	t.Run("Idempotent", func(t *testing.T) {
		c := domain.FilterCriteria{MaxPrice: 50000, SearchText: "a"}
		once := service.FilterProducts(catalogFixture(), c)
		twice := service.FilterProducts(once, c)
		assert.Equal(t, once, twice)
	})

	t.Run("KeepsInputOrder", func(t *testing.T) {
		got := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			MaxPrice: anyPrice, Stock: stockOf(domain.StockAvailable),
		})
		assert.Equal(t, []string{
			"Galaxy S24", "iPhone 15", "Redmi Note 13",
		}, modelsOf(got))
	})
}

func modelsOf(ps []domain.Product) []string {
	models := make([]string, 0, len(ps))
	for _, p := range ps {
		models = append(models, p.Model)
	}
	return models
}
