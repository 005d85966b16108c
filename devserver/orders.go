package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thakoorchandan/navswara-go/models"
)

type orderRequest struct {
	ShippingAddress models.Address     `json:"shippingAddress"`
	Items           []models.OrderItem `json:"items"`
	Amount          float64            `json:"amount"`
}

type verifyStripeRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// generateOrderRef builds a unique order reference, e.g.
// 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func (s *Server) buildOrder(req orderRequest, method string, paid bool) (models.Order, string) {
	if len(req.Items) == 0 {
		return models.Order{}, "Cart is empty"
	}
	if msg := validAddress(req.ShippingAddress); msg != "" {
		return models.Order{}, msg
	}
	paymentStatus := models.PaymentStatusPending
	if paid {
		paymentStatus = models.PaymentStatusPaid
	}
	return models.Order{
		ID:              generateOrderRef(),
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   method,
		Status:          models.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		Amount:          req.Amount,
		CreatedAt:       time.Now(),
	}, ""
}

// GET /api/user/me/orders
func (s *Server) listOrders(c *gin.Context) {
	userID := currentUser(c)

	s.mu.Lock()
	orders := append([]models.Order(nil), s.orders[userID]...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// POST /api/order/place handles cash on delivery. The order is recorded and
// the server-side cart cleared.
func (s *Server) placeOrder(c *gin.Context) {
	userID := currentUser(c)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, msg := s.buildOrder(req, "cod", false)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	s.orders[userID] = append(s.orders[userID], order)
	s.carts[userID] = models.CartItems{}
	s.mu.Unlock()

	s.broadcastOrder(order)
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// POST /api/order/razorpay creates a gateway order awaiting payment;
// nothing is recorded until verification.
func (s *Server) createRazorpayOrder(c *gin.Context) {
	userID := currentUser(c)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, msg := s.buildOrder(req, "razorpay", true)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	ref := "order_" + uuid.NewString()
	s.mu.Lock()
	s.pending[ref] = pendingPayment{UserID: userID, Order: order}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "order": models.GatewayOrder{
		ID:       ref,
		Amount:   order.Amount,
		Currency: "INR",
	}})
}

// POST /api/order/verifyRazorPay
func (s *Server) verifyRazorpay(c *gin.Context) {
	userID := currentUser(c)

	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	s.finalizePending(c, userID, payload["razorpay_order_id"])
}

// POST /api/order/stripe creates a checkout session; the sessionUrl
// carries the ids the verify step needs.
func (s *Server) createStripeSession(c *gin.Context) {
	userID := currentUser(c)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, msg := s.buildOrder(req, "stripe", true)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	ref := "cs_" + uuid.NewString()
	s.mu.Lock()
	s.pending[ref] = pendingPayment{UserID: userID, Order: order}
	s.mu.Unlock()

	sessionURL := "/checkout/session?orderId=" + order.ID + "&session_id=" + ref
	c.JSON(http.StatusOK, gin.H{"success": true, "sessionUrl": sessionURL})
}

// POST /api/order/verifyStripe
func (s *Server) verifyStripe(c *gin.Context) {
	userID := currentUser(c)

	var req verifyStripeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	s.finalizePending(c, userID, req.SessionID)
}

// finalizePending promotes a pending hosted payment into a recorded
// order and clears the server-side cart.
func (s *Server) finalizePending(c *gin.Context, userID, ref string) {
	s.mu.Lock()
	pending, ok := s.pending[ref]
	if !ok || pending.UserID != userID {
		s.mu.Unlock()
		fail(c, http.StatusBadRequest, "Payment verification failed")
		return
	}
	delete(s.pending, ref)
	s.orders[userID] = append(s.orders[userID], pending.Order)
	s.carts[userID] = models.CartItems{}
	s.mu.Unlock()

	s.broadcastOrder(pending.Order)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified", "order": pending.Order})
}

// AdvanceOrder moves an order to the next status in the fulfilment
// progression and broadcasts the change; dev tooling and tests drive
// the lifecycle with it.
func (s *Server) AdvanceOrder(userID, orderID string) (models.Order, bool) {
	next := map[models.OrderStatus]models.OrderStatus{
		models.OrderStatusPending:     models.OrderStatusConfirmed,
		models.OrderStatusConfirmed:   models.OrderStatusReadyToShip,
		models.OrderStatusReadyToShip: models.OrderStatusShipped,
		models.OrderStatusShipped:     models.OrderStatusDelivered,
	}

	s.mu.Lock()
	orders := s.orders[userID]
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		status, ok := next[orders[i].Status]
		if !ok {
			s.mu.Unlock()
			return orders[i], false
		}
		orders[i].Status = status
		order := orders[i]
		s.mu.Unlock()
		s.broadcastOrder(order)
		return order, true
	}
	s.mu.Unlock()
	return models.Order{}, false
}
