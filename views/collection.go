// Package views holds the derived views of the catalog and cart: pure
// functions of their inputs, never a source of truth themselves.
package views

import (
	"sort"
	"strings"

	"github.com/thakoorchandan/navswara-go/models"
)

// Sort modes for the collection page.
const (
	SortRelevant = "relevant" // insertion order preserved
	SortLowHigh  = "low-high"
	SortHighLow  = "high-low"
)

// Filter is the active filter set for the collection view. All
// populated criteria must hold (conjunction); within one criterion the
// selected values are alternatives.
type Filter struct {
	Search        string
	Categories    []string
	SubCategories []string
	Brands        []string
	Tags          []string
	MinPrice      float64
	MaxPrice      float64
}

// NewFilter returns a filter whose price range spans the given catalog,
// so no product is excluded before the user narrows anything. Recompute
// whenever the catalog changes: a stale range silently hiding products
// is a defect.
func NewFilter(products []models.Product) Filter {
	min, max := PriceBounds(products)
	return Filter{MinPrice: min, MaxPrice: max}
}

// PriceBounds returns the lowest and highest price in the catalog, or
// (0, 0) for an empty catalog.
func PriceBounds(products []models.Product) (float64, float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// Collection applies the filter conjunction and then the requested
// ordering. Price sorts are stable: ties keep their relative input
// order. The input slice is never mutated.
func Collection(products []models.Product, f Filter, sortType string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}

	switch sortType {
	case SortLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func matches(p models.Product, f Filter) bool {
	if q := strings.TrimSpace(f.Search); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			return false
		}
	}
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.SubCategories) > 0 && !contains(f.SubCategories, p.SubCategory) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Tags) > 0 && !anyTag(p, f.Tags) {
		return false
	}
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// anyTag reports whether any of the product's tags is in the selected
// set.
func anyTag(p models.Product, selected []string) bool {
	for _, tag := range selected {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}
