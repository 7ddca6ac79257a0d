package service

import (
	"cmp"
	"slices"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
)

// SelectFeatured picks the carousel promotion subset: products are
// grouped by brand in first-seen order, each group is sorted by price
// descending (stable, so price ties keep catalog order) and the top
// topPerBrand of every group are concatenated into one flat list.
func SelectFeatured(ps []domain.Product, topPerBrand int) []domain.Product {
	if topPerBrand <= 0 {
		return nil
	}

	var brandOrder []string
	groups := make(map[string][]domain.Product)
	for _, p := range ps {
		if _, ok := groups[p.Brand]; !ok {
			brandOrder = append(brandOrder, p.Brand)
		}
		groups[p.Brand] = append(groups[p.Brand], p)
	}

	var featured []domain.Product
	for _, brand := range brandOrder {
		g := groups[brand]
		slices.SortStableFunc(g, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
		featured = append(featured, g[:min(topPerBrand, len(g))]...)
	}
	return featured
}

// PartitionSlides chunks the featured list into consecutive slides of
// slideSize products; only the last slide may hold fewer. An empty
// featured list yields no slides at all.
func PartitionSlides(featured []domain.Product, slideSize int) []domain.Slide {
	if slideSize <= 0 {
		return nil
	}

	var slides []domain.Slide
	for start := 0; start < len(featured); start += slideSize {
		end := min(start+slideSize, len(featured))
		slides = append(slides, domain.Slide(featured[start:end]))
	}
	return slides
}
