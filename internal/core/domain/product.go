package domain

type StockState string

const (
	StockAvailable   StockState = "A"
	StockUnavailable StockState = "U"
)

// StockStateFromCode maps the source system one-letter code:
// 'A' is available, any other value is unavailable.
func StockStateFromCode(code string) StockState {
	if code == "A" {
		return StockAvailable
	}
	return StockUnavailable
}

type (
	// A RawRecord is a catalog record as the remote source delivers it,
	// before normalization. ImageLinks holds the unparsed
	// single-quote-delimited list string.
	RawRecord struct {
		Company       string
		BrandLogo     string
		Model         string
		ImageLinks    string
		OriginalPrice float64
		Offer         float64
		Price         float64
		DetailsURL    string
		StockCode     string
	}

	// A Product is the canonical catalog entity. Immutable after
	// normalization.
	Product struct {
		Brand         string
		BrandLogoURL  string
		Model         string
		ImageURLs     []string
		OriginalPrice float64
		Offer         float64
		Price         float64
		DetailsURL    string
		Stock         StockState
	}
)

func (p Product) InStock() bool {
	return p.Stock == StockAvailable
}

// A FilterCriteria combines the four grid filters. Zero-value string
// fields and a nil Stock mean "match everything" for that clause.
type FilterCriteria struct {
	Brand      string
	MaxPrice   float64
	Stock      *StockState
	SearchText string
}

// A Slide is one carousel page of featured products, at most the
// configured slide size.
type Slide []Product

// A CartEvent records an add-to-cart action. The product model name is
// the stable key of the action surface.
type CartEvent struct {
	Model string
	Brand string
	Price float64
}
