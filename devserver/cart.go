package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thakoorchandan/navswara-go/models"
)

type cartAddRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

type cartUpdateRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity"`
}

// userCart returns the cart for a user, creating it on first touch.
// Callers hold s.mu.
func (s *Server) userCart(userID string) models.CartItems {
	cart, ok := s.carts[userID]
	if !ok {
		cart = models.CartItems{}
		s.carts[userID] = cart
	}
	return cart
}

func (s *Server) productExists(id string) bool {
	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// POST /api/cart/get
func (s *Server) getCart(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	cart := s.userCart(userID).Clone()
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "cartData": cart})
}

// POST /api/cart/add
func (s *Server) addCartItem(c *gin.Context) {
	userID := currentUser(c)

	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	s.mu.Lock()
	if !s.productExists(req.ItemID) {
		s.mu.Unlock()
		fail(c, http.StatusBadRequest, "Product does not exist")
		return
	}
	s.userCart(userID).Add(req.ItemID, req.Size)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart"})
}

// POST /api/cart/update
func (s *Server) updateCartItem(c *gin.Context) {
	userID := currentUser(c)

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	s.mu.Lock()
	if req.Quantity > 0 && !s.productExists(req.ItemID) {
		s.mu.Unlock()
		fail(c, http.StatusBadRequest, "Product does not exist")
		return
	}
	s.userCart(userID).Set(req.ItemID, req.Size, req.Quantity)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
}
