package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thakoorchandan/navswara-go/models"
)

// GET /api/user/me
func (s *Server) getProfile(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	u := s.users[userID]
	s.mu.Unlock()
	if u == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": models.Profile{
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}})
}

func validAddress(addr models.Address) string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"fullName", addr.FullName},
		{"line1", addr.Line1},
		{"city", addr.City},
		{"state", addr.State},
		{"postalCode", addr.PostalCode},
		{"country", addr.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return ""
}

// GET /api/user/me/addresses
func (s *Server) listAddresses(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	addresses := append([]models.Address(nil), s.addresses[userID]...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "addresses": addresses})
}

// POST /api/user/me/addresses
func (s *Server) addAddress(c *gin.Context) {
	userID := currentUser(c)

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg := validAddress(addr); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}
	if addr.Type == "" {
		addr.Type = models.AddressTypeHome
	}

	s.mu.Lock()
	for _, existing := range s.addresses[userID] {
		if existing.Type == addr.Type {
			s.mu.Unlock()
			fail(c, http.StatusBadRequest, "An address of type \""+addr.Type+"\" already exists")
			return
		}
	}
	s.addresses[userID] = append(s.addresses[userID], addr)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"success": true, "address": addr})
}

// PUT /api/user/me/addresses/:index
func (s *Server) updateAddress(c *gin.Context) {
	userID := currentUser(c)

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg := validAddress(addr); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	list := s.addresses[userID]
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(list) {
		s.mu.Unlock()
		fail(c, http.StatusNotFound, "No address at that index")
		return
	}
	if addr.Type == "" {
		addr.Type = list[index].Type
	}
	for i, existing := range list {
		if i != index && existing.Type == addr.Type {
			s.mu.Unlock()
			fail(c, http.StatusBadRequest, "An address of type \""+addr.Type+"\" already exists")
			return
		}
	}
	list[index] = addr
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "address": addr})
}

// DELETE /api/user/me/addresses/:index
func (s *Server) deleteAddress(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	list := s.addresses[userID]
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(list) {
		s.mu.Unlock()
		fail(c, http.StatusNotFound, "No address at that index")
		return
	}
	s.addresses[userID] = append(list[:index], list[index+1:]...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address deleted"})
}

// GET /api/user/me/payments
func (s *Server) listPayments(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	payments := append([]models.PaymentMethod(nil), s.payments[userID]...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "paymentMethods": payments})
}

// POST /api/user/me/payments
func (s *Server) addPayment(c *gin.Context) {
	userID := currentUser(c)

	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if method.Last4 == "" {
		fail(c, http.StatusBadRequest, "Missing card details")
		return
	}

	s.mu.Lock()
	s.payments[userID] = append(s.payments[userID], method)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"success": true, "paymentMethod": method})
}

// DELETE /api/user/me/payments/:index
func (s *Server) deletePayment(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	list := s.payments[userID]
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(list) {
		s.mu.Unlock()
		fail(c, http.StatusNotFound, "No payment method at that index")
		return
	}
	s.payments[userID] = append(list[:index], list[index+1:]...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment method deleted"})
}
