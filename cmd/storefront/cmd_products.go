package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thakoorchandan/navswara-go/views"
)

var (
	filterSearch     string
	filterCategories []string
	filterSubCats    []string
	filterBrands     []string
	filterTags       []string
	filterMinPrice   float64
	filterMaxPrice   float64
	sortType         string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the collection with filters and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.FetchProducts(cmd.Context()); err != nil {
			return err
		}
		catalog := s.Products()

		filter := views.NewFilter(catalog)
		filter.Search = filterSearch
		filter.Categories = filterCategories
		filter.SubCategories = filterSubCats
		filter.Brands = filterBrands
		filter.Tags = filterTags
		if cmd.Flags().Changed("min-price") {
			filter.MinPrice = filterMinPrice
		}
		if cmd.Flags().Changed("max-price") {
			filter.MaxPrice = filterMaxPrice
		}

		results := views.Collection(catalog, filter, sortType)
		if len(results) == 0 {
			fmt.Println("No products match those filters.")
			return nil
		}
		for _, p := range results {
			badge := ""
			if p.BestSeller {
				badge = " ★"
			}
			fmt.Printf("%-24s %-28s %s%.2f%s\n", p.ID, p.Name, s.Currency(), p.Price, badge)
		}
		return nil
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <product-id>",
	Short: "Show products sharing a tag with the given product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.FetchProducts(cmd.Context()); err != nil {
			return err
		}
		catalog := s.Products()

		for _, p := range catalog {
			if p.ID != args[0] {
				continue
			}
			for _, rel := range views.Related(catalog, p) {
				fmt.Printf("%-24s %-28s %s%.2f\n", rel.ID, rel.Name, s.Currency(), rel.Price)
			}
			return nil
		}
		return fmt.Errorf("no product with id %q", args[0])
	},
}

func init() {
	productsCmd.Flags().StringVar(&filterSearch, "search", "", "name substring, case-insensitive")
	productsCmd.Flags().StringSliceVar(&filterCategories, "category", nil, "category filter (repeatable)")
	productsCmd.Flags().StringSliceVar(&filterSubCats, "subcategory", nil, "sub-category filter (repeatable)")
	productsCmd.Flags().StringSliceVar(&filterBrands, "brand", nil, "brand filter (repeatable)")
	productsCmd.Flags().StringSliceVar(&filterTags, "tag", nil, "tag filter (repeatable)")
	productsCmd.Flags().Float64Var(&filterMinPrice, "min-price", 0, "inclusive lower price bound")
	productsCmd.Flags().Float64Var(&filterMaxPrice, "max-price", 0, "inclusive upper price bound")
	productsCmd.Flags().StringVar(&sortType, "sort", views.SortRelevant, "relevant | low-high | high-low")

	rootCmd.AddCommand(productsCmd, relatedCmd)
}
