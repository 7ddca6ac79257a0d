package service

import (
	"strings"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
)

// FilterProducts applies the four grid filters as a logical AND,
// keeping input order. Each clause matches everything when its
// criterion is unset.
func FilterProducts(
	ps []domain.Product, c domain.FilterCriteria,
) []domain.Product {
	filtered := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if MatchesCriteria(p, c) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func MatchesCriteria(p domain.Product, c domain.FilterCriteria) bool {
	return MatchesBrand(p, c) &&
		MatchesPrice(p, c) &&
		MatchesStock(p, c) &&
		MatchesSearch(p, c)
}

func MatchesBrand(p domain.Product, c domain.FilterCriteria) bool {
	return c.Brand == "" || p.Brand == c.Brand
}

func MatchesPrice(p domain.Product, c domain.FilterCriteria) bool {
	return p.Price <= c.MaxPrice
}

func MatchesStock(p domain.Product, c domain.FilterCriteria) bool {
	return c.Stock == nil || p.Stock == *c.Stock
}

// MatchesSearch is a case-insensitive substring match against the
// product model or brand.
func MatchesSearch(p domain.Product, c domain.FilterCriteria) bool {
	if c.SearchText == "" {
		return true
	}
	q := strings.ToLower(c.SearchText)
	return strings.Contains(strings.ToLower(p.Model), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}
