// Package models holds the storefront's domain types, shaped to match
// the commerce API's JSON wire format.
package models

// Image is a hosted product image.
type Image struct {
	URL string `json:"url"`
}

// Product is one catalog entry. The API identifies products by the
// Mongo-style "_id" field.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	CoverImage  Image    `json:"coverImage"`
	Images      []Image  `json:"images"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Brand       string   `json:"brand"`
	Tags        []string `json:"tags"`
	Sizes       []string `json:"sizes"`
	BestSeller  bool     `json:"bestseller"`
	InStock     bool     `json:"inStock"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
