package service

import "github.com/slts2025/subhalaxmiteleservices/internal/core/domain"

const (
	inStockLabel     = "In Stock"
	outOfStockLabel  = "Out of Stock"
	noResultsMessage = "No products found matching your criteria."
)

// A Renderer builds view descriptions from catalog entities. It carries
// presentation defaults only, no catalog state.
type Renderer struct {
	placeholderImage string
}

func NewRenderer(placeholderImage string) Renderer {
	return Renderer{placeholderImage}
}

// RenderGrid describes the product grid. A filtered-out-to-nothing set
// renders the explicit no-results state, not an empty container.
func (r Renderer) RenderGrid(ps []domain.Product) domain.GridView {
	v := domain.GridView{Total: len(ps)}
	if len(ps) == 0 {
		v.Empty = true
		v.Message = noResultsMessage
		return v
	}
	v.Cards = r.renderCards(ps)
	return v
}

// RenderCarousel describes the featured carousel. The first slide is
// the active one; zero slides mean no carousel and no indicators.
func (r Renderer) RenderCarousel(slides []domain.Slide) domain.CarouselView {
	var v domain.CarouselView
	for i, s := range slides {
		v.Slides = append(v.Slides, domain.SlideView{
			Index:  i,
			Active: i == 0,
			Cards:  r.renderCards(s),
		})
	}
	return v
}

func (r Renderer) renderCards(ps []domain.Product) []domain.ProductCard {
	cards := make([]domain.ProductCard, 0, len(ps))
	for _, p := range ps {
		cards = append(cards, r.renderCard(p))
	}
	return cards
}

func (r Renderer) renderCard(p domain.Product) domain.ProductCard {
	card := domain.ProductCard{
		Brand:        p.Brand,
		BrandLogoURL: p.BrandLogoURL,
		Model:        p.Model,
		ImageURL:     r.placeholderImage,
		Price:        p.Price,
		InStock:      p.InStock(),
		StockLabel:   outOfStockLabel,
		DetailsURL:   p.DetailsURL,
	}

	if len(p.ImageURLs) > 0 {
		card.ImageURL = p.ImageURLs[0]
	}

	if p.OriginalPrice > p.Price {
		card.OriginalPrice = p.OriginalPrice
		card.ShowOriginal = true
	}

	if card.InStock {
		card.StockLabel = inStockLabel
	}

	return card
}
