package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thakoorchandan/navswara-go/models"
)

// GET /api/product/list
func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// SetProducts replaces the seeded catalog; tests use this to control
// exactly what the client sees.
func (s *Server) SetProducts(products []models.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod-saree-banarasi",
			Name:        "Banarasi Silk Saree",
			Description: "Handwoven Banarasi saree with zari border.",
			Price:       2499,
			CoverImage:  models.Image{URL: "/uploads/saree-banarasi.jpg"},
			Images:      []models.Image{{URL: "/uploads/saree-banarasi-1.jpg"}, {URL: "/uploads/saree-banarasi-2.jpg"}},
			Category:    "Women",
			SubCategory: "Ethnic",
			Brand:       "NavSwara",
			Tags:        []string{"silk", "festive"},
			Sizes:       []string{"Free Size"},
			BestSeller:  true,
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 112,
		},
		{
			ID:          "prod-kurta-cotton",
			Name:        "Cotton Kurta",
			Description: "Everyday straight-cut cotton kurta.",
			Price:       799,
			CoverImage:  models.Image{URL: "/uploads/kurta-cotton.jpg"},
			Images:      []models.Image{{URL: "/uploads/kurta-cotton-1.jpg"}},
			Category:    "Women",
			SubCategory: "Topwear",
			Brand:       "NavSwara",
			Tags:        []string{"cotton", "casual"},
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true,
			Rating:      4.2,
			ReviewCount: 58,
		},
		{
			ID:          "prod-shirt-linen",
			Name:        "Linen Shirt",
			Description: "Breathable linen shirt in natural tones.",
			Price:       1199,
			CoverImage:  models.Image{URL: "/uploads/shirt-linen.jpg"},
			Images:      []models.Image{{URL: "/uploads/shirt-linen-1.jpg"}},
			Category:    "Men",
			SubCategory: "Topwear",
			Brand:       "NavSwara",
			Tags:        []string{"linen", "casual"},
			Sizes:       []string{"M", "L", "XL"},
			InStock:     true,
			Rating:      4.4,
			ReviewCount: 73,
		},
		{
			ID:          "prod-dupatta-silk",
			Name:        "Silk Dupatta",
			Description: "Light silk dupatta with festive motifs.",
			Price:       649,
			CoverImage:  models.Image{URL: "/uploads/dupatta-silk.jpg"},
			Images:      []models.Image{{URL: "/uploads/dupatta-silk-1.jpg"}},
			Category:    "Women",
			SubCategory: "Accessories",
			Brand:       "NavSwara",
			Tags:        []string{"silk", "festive"},
			Sizes:       []string{"Free Size"},
			InStock:     true,
			Rating:      4.1,
			ReviewCount: 21,
		},
	}
}
