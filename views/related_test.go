package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thakoorchandan/navswara-go/models"
)

func TestRelatedSharesAnyTag(t *testing.T) {
	ref := models.Product{ID: "ref", Tags: []string{"silk", "festive"}}
	catalog := []models.Product{
		ref,
		{ID: "p1", Name: "Cotton Kurta", Tags: []string{"cotton"}},
		{ID: "p2", Name: "Silk Dupatta", Tags: []string{"silk"}},
	}

	got := Related(catalog, ref)
	require.Len(t, got, 1)
	require.Equal(t, "p2", got[0].ID)
}

func TestRelatedExcludesReference(t *testing.T) {
	ref := models.Product{ID: "ref", Tags: []string{"silk"}}
	got := Related([]models.Product{ref}, ref)
	require.Empty(t, got, "the reference itself is never related, even when in the catalog")
}

func TestRelatedNoTags(t *testing.T) {
	ref := models.Product{ID: "ref"}
	catalog := []models.Product{{ID: "p1", Tags: []string{"silk"}}}
	require.Empty(t, Related(catalog, ref))
}

func TestRelatedEmptyCatalog(t *testing.T) {
	ref := models.Product{ID: "ref", Tags: []string{"silk"}}
	require.Empty(t, Related(nil, ref))
}

func TestLatestSkipsBestsellers(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", BestSeller: true},
		{ID: "p2"},
		{ID: "p3"},
		{ID: "p4"},
	}
	got := Latest(catalog, 2)
	require.Len(t, got, 2)
	require.Equal(t, "p2", got[0].ID)
	require.Equal(t, "p3", got[1].ID)
}

func TestBestsellers(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", BestSeller: true},
		{ID: "p2"},
		{ID: "p3", BestSeller: true},
	}
	got := Bestsellers(catalog, 10)
	require.Len(t, got, 2)
}

func TestOptionsDistinctFirstSeen(t *testing.T) {
	catalog := []models.Product{
		{Category: "Women"},
		{Category: "Men"},
		{Category: "Women"},
		{Category: ""},
	}
	got := Options(catalog, func(p models.Product) string { return p.Category })
	require.Equal(t, []string{"Women", "Men"}, got)
}

func TestTagOptions(t *testing.T) {
	catalog := []models.Product{
		{Tags: []string{"silk", "festive"}},
		{Tags: []string{"silk", "cotton"}},
	}
	require.Equal(t, []string{"silk", "festive", "cotton"}, TagOptions(catalog))
}
