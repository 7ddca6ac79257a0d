package domain

// View descriptions are the renderer output contract: plain data a
// presentation layer can turn into markup without touching catalog
// logic.

type (
	// A ProductCard describes one rendered product tile.
	ProductCard struct {
		Brand        string
		BrandLogoURL string
		Model        string
		ImageURL     string
		Price        float64
		// OriginalPrice is shown struck through, present only when the
		// pre-discount price is strictly greater than the effective one.
		OriginalPrice float64
		ShowOriginal  bool
		InStock       bool
		StockLabel    string
		DetailsURL    string
	}

	// A GridView describes the filterable product grid. Empty is set on
	// a successful render with no matching products, which keeps the
	// no-results state distinct from a load failure.
	GridView struct {
		Total   int
		Empty   bool
		Message string
		Cards   []ProductCard
	}

	SlideView struct {
		Index  int
		Active bool
		Cards  []ProductCard
	}

	// A CarouselView describes the featured carousel. Zero products
	// yield zero slides and no indicators.
	CarouselView struct {
		Slides []SlideView
	}
)
