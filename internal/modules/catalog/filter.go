package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Visible returns the subset of products matching the current selection.
// A product is included when the active category is the "All" sentinel or
// matches the product's category, and the query is a case-insensitive
// substring of the product name (an empty query matches everything).
//
// The filter is stable: catalogue order is preserved, never re-sorted. An
// empty result is a valid state, not an error.
func Visible(all []Product, activeCategory Category, query string) []Product {
	q := strings.ToLower(query)
	return lo.Filter(all, func(p Product, _ int) bool {
		if activeCategory != CategoryAll && p.Category != activeCategory {
			return false
		}
		return q == "" || strings.Contains(strings.ToLower(p.Name), q)
	})
}
