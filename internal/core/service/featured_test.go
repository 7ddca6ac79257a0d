package service_test

import (
	"testing"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFeatured(t *testing.T) {
	t.Run("TopTwoPerBrandSortedByPriceDesc", func(t *testing.T) {
		ps := []domain.Product{
			{Brand: "A", Model: "A100", Price: 100},
			{Brand: "A", Model: "A300", Price: 300},
			{Brand: "A", Model: "A200", Price: 200},
			{Brand: "B", Model: "B50", Price: 50},
		}

		featured := service.SelectFeatured(ps, 2)

		assert.Equal(t, []string{"A300", "A200", "B50"}, modelsOf(featured))
	})

	t.Run("SelectedAreTheMostExpensive", func(t *testing.T) {
		ps := []domain.Product{
			{Brand: "A", Model: "cheap", Price: 10},
			{Brand: "A", Model: "mid", Price: 20},
			{Brand: "A", Model: "top", Price: 30},
			{Brand: "B", Model: "b1", Price: 5},
			{Brand: "B", Model: "b2", Price: 7},
			{Brand: "B", Model: "b3", Price: 6},
		}

		featured := service.SelectFeatured(ps, 2)
		require.Len(t, featured, 4)

		minSelected := map[string]float64{"A": 20, "B": 6}
		for _, p := range featured {
			assert.GreaterOrEqual(t, p.Price, minSelected[p.Brand])
		}
	})

	t.Run("PriceTiesKeepCatalogOrder", func(t *testing.T) {
		ps := []domain.Product{
			{Brand: "A", Model: "first", Price: 100},
			{Brand: "A", Model: "second", Price: 100},
			{Brand: "A", Model: "third", Price: 100},
		}

		featured := service.SelectFeatured(ps, 2)
		assert.Equal(t, []string{"first", "second"}, modelsOf(featured))
	})

	t.Run("BrandWithFewerProducts", func(t *testing.T) {
		ps := []domain.Product{{Brand: "Solo", Model: "only", Price: 1}}
		featured := service.SelectFeatured(ps, 2)
		assert.Equal(t, []string{"only"}, modelsOf(featured))
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		assert.Empty(t, service.SelectFeatured(nil, 2))
	})
}

func TestPartitionSlides(t *testing.T) {
	t.Run("ConcatenationReproducesFeaturedList", func(t *testing.T) {
		featured := make([]domain.Product, 7)
		for i := range featured {
			featured[i].Model = string(rune('a' + i))
		}

		slides := service.PartitionSlides(featured, 3)
		require.Len(t, slides, 3)

		var flat []domain.Product
		for i, s := range slides {
			assert.LessOrEqual(t, len(s), 3)
			if i < len(slides)-1 {
				assert.Len(t, s, 3, "only the last slide may be short")
			}
			flat = append(flat, s...)
		}
		assert.Equal(t, featured, flat)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		slides := service.PartitionSlides(make([]domain.Product, 6), 3)
		require.Len(t, slides, 2)
		assert.Len(t, slides[1], 3)
	})

	t.Run("EmptyFeaturedList", func(t *testing.T) {
		assert.Empty(t, service.PartitionSlides(nil, 3))
	})
}

func TestFeaturedScenario(t *testing.T) {
	// two brands: A priced [100, 300, 200], B priced [50];
	// expect one slide [A@300, A@200, B@50]
	ps := []domain.Product{
		{Brand: "A", Model: "A@100", Price: 100},
		{Brand: "A", Model: "A@300", Price: 300},
		{Brand: "A", Model: "A@200", Price: 200},
		{Brand: "B", Model: "B@50", Price: 50},
	}

	slides := service.PartitionSlides(service.SelectFeatured(ps, 2), 3)

	require.Len(t, slides, 1)
	assert.Equal(t, []string{"A@300", "A@200", "B@50"}, modelsOf(slides[0]))
}
