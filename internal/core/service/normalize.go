package service

import (
	"encoding/json"
	"strings"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
)

// Normalize maps raw catalog records into canonical products, keeping
// input order. It is total: a damaged image-links field degrades to an
// empty list for that record only and never fails the whole catalog.
func Normalize(rs []domain.RawRecord) []domain.Product {
	ps := make([]domain.Product, 0, len(rs))
	for _, r := range rs {
		ps = append(ps, domain.Product{
			Brand:         r.Company,
			BrandLogoURL:  r.BrandLogo,
			Model:         r.Model,
			ImageURLs:     ParseImageList(r.ImageLinks),
			OriginalPrice: r.OriginalPrice,
			Offer:         r.Offer,
			Price:         r.Price,
			DetailsURL:    r.DetailsURL,
			Stock:         domain.StockStateFromCode(r.StockCode),
		})
	}
	return ps
}

// ParseImageList parses the source system image-links field, a list
// literal delimited with single quotes instead of double ones. The
// quote substitution is isolated here so a stricter source format can
// replace it later. Empty or unparsable input yields an empty list.
func ParseImageList(s string) []string {
	if s == "" {
		return []string{}
	}

	var urls []string
	err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &urls)
	if err != nil {
		return []string{}
	}
	return urls
}
