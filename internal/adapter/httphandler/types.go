package httphandler

type (
	ProductCard struct {
		Brand         string  `json:"brand"`
		BrandLogo     string  `json:"brand_logo"`
		Model         string  `json:"model"`
		Image         string  `json:"image"`
		Price         float64 `json:"price"`
		OriginalPrice float64 `json:"original_price,omitempty"`
		ShowOriginal  bool    `json:"show_original"`
		InStock       bool    `json:"in_stock"`
		StockLabel    string  `json:"stock_label"`
		DetailsURL    string  `json:"details_url"`
	}

	GridView struct {
		Total   int           `json:"total"`
		Empty   bool          `json:"empty"`
		Message string        `json:"message,omitempty"`
		Cards   []ProductCard `json:"cards"`
	}

	SlideView struct {
		Index  int           `json:"index"`
		Active bool          `json:"active"`
		Cards  []ProductCard `json:"cards"`
	}

	CarouselView struct {
		Slides []SlideView `json:"slides"`
	}
)

type CartAction struct {
	Model string `json:"model"`
}
