package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thakoorchandan/navswara-go/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Red Saree", Price: 100, Category: "Women", Tags: []string{"silk"}},
		{ID: "p2", Name: "Blue Shirt", Price: 50, Category: "Men", Tags: []string{"cotton"}},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestCollectionCategoryFilter(t *testing.T) {
	catalog := sampleCatalog()
	filter := NewFilter(catalog)
	filter.Categories = []string{"Women"}

	got := Collection(catalog, filter, SortRelevant)
	require.Equal(t, []string{"Red Saree"}, names(got))
}

func TestCollectionSortLowHigh(t *testing.T) {
	catalog := sampleCatalog()
	got := Collection(catalog, NewFilter(catalog), SortLowHigh)
	require.Equal(t, []string{"Blue Shirt", "Red Saree"}, names(got))
}

func TestCollectionSortHighLow(t *testing.T) {
	catalog := sampleCatalog()
	got := Collection(catalog, NewFilter(catalog), SortHighLow)
	require.Equal(t, []string{"Red Saree", "Blue Shirt"}, names(got))
}

func TestCollectionSortIsStable(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Name: "A", Price: 100},
		{ID: "b", Name: "B", Price: 100},
		{ID: "c", Name: "C", Price: 100},
		{ID: "d", Name: "D", Price: 50},
	}
	got := Collection(catalog, NewFilter(catalog), SortLowHigh)
	require.Equal(t, []string{"D", "A", "B", "C"}, names(got), "price ties keep input order")
}

func TestCollectionFiltersAreConjunction(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", Name: "Silk Saree", Price: 100, Category: "Women", Brand: "NavSwara", Tags: []string{"silk"}},
		{ID: "p2", Name: "Silk Scarf", Price: 40, Category: "Women", Brand: "Rival", Tags: []string{"silk"}},
		{ID: "p3", Name: "Cotton Saree", Price: 90, Category: "Women", Brand: "NavSwara", Tags: []string{"cotton"}},
	}
	filter := NewFilter(catalog)
	filter.Categories = []string{"Women"}
	filter.Brands = []string{"NavSwara"}
	filter.Tags = []string{"silk"}

	got := Collection(catalog, filter, SortRelevant)
	require.Equal(t, []string{"Silk Saree"}, names(got))
}

func TestCollectionSearchCaseInsensitive(t *testing.T) {
	catalog := sampleCatalog()
	filter := NewFilter(catalog)
	filter.Search = "rEd sA"

	got := Collection(catalog, filter, SortRelevant)
	require.Equal(t, []string{"Red Saree"}, names(got))
}

func TestCollectionTagMatchIsAny(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", Name: "Festive Saree", Price: 100, Tags: []string{"silk", "festive"}},
		{ID: "p2", Name: "Plain Shirt", Price: 50, Tags: []string{"cotton"}},
	}
	filter := NewFilter(catalog)
	filter.Tags = []string{"festive", "linen"}

	got := Collection(catalog, filter, SortRelevant)
	require.Equal(t, []string{"Festive Saree"}, names(got))
}

func TestCollectionPriceRangeInclusive(t *testing.T) {
	catalog := sampleCatalog()
	filter := NewFilter(catalog)
	filter.MinPrice = 50
	filter.MaxPrice = 100

	require.Len(t, Collection(catalog, filter, SortRelevant), 2)

	filter.MinPrice = 51
	got := Collection(catalog, filter, SortRelevant)
	require.Equal(t, []string{"Red Saree"}, names(got))
}

func TestCollectionEmptyCatalog(t *testing.T) {
	got := Collection(nil, NewFilter(nil), SortLowHigh)
	require.Empty(t, got)
}

func TestNewFilterSpansCatalog(t *testing.T) {
	catalog := sampleCatalog()
	filter := NewFilter(catalog)
	require.Equal(t, 50.0, filter.MinPrice)
	require.Equal(t, 100.0, filter.MaxPrice)

	// a recomputed range after a catalog change must not exclude anything
	catalog = append(catalog, models.Product{ID: "p3", Name: "Luxe Saree", Price: 999})
	filter = NewFilter(catalog)
	require.Len(t, Collection(catalog, filter, SortRelevant), 3)
}

func TestPriceBoundsEmpty(t *testing.T) {
	min, max := PriceBounds(nil)
	require.Zero(t, min)
	require.Zero(t, max)
}

func TestCollectionDoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	Collection(catalog, NewFilter(catalog), SortLowHigh)
	require.Equal(t, "Red Saree", catalog[0].Name, "input order must be preserved")
}
