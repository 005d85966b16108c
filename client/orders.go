package client

import (
	"context"

	"github.com/thakoorchandan/navswara-go/models"
)

// OrderRequest is the checkout payload shared by the cash and
// hosted-payment order endpoints.
type OrderRequest struct {
	ShippingAddress models.Address     `json:"shippingAddress"`
	Items           []models.OrderItem `json:"items"`
	Amount          float64            `json:"amount"`
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var resp struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	if err := c.get(ctx, "/api/user/me/orders", token, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// PlaceOrder creates a cash-on-delivery order.
func (c *Client) PlaceOrder(ctx context.Context, token string, req OrderRequest) (models.Order, error) {
	var resp struct {
		envelope
		Order models.Order `json:"order"`
	}
	if err := c.post(ctx, "/api/order/place", token, req, &resp); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// CreateRazorpayOrder opens a hosted Razorpay payment; the returned
// gateway order carries the id the payment widget needs.
func (c *Client) CreateRazorpayOrder(ctx context.Context, token string, req OrderRequest) (models.GatewayOrder, error) {
	var resp struct {
		envelope
		Order models.GatewayOrder `json:"order"`
	}
	if err := c.post(ctx, "/api/order/razorpay", token, req, &resp); err != nil {
		return models.GatewayOrder{}, err
	}
	return resp.Order, nil
}

// CreateStripeSession opens a hosted Stripe checkout and returns the
// redirect URL.
func (c *Client) CreateStripeSession(ctx context.Context, token string, req OrderRequest) (string, error) {
	var resp struct {
		envelope
		SessionURL string `json:"sessionUrl"`
	}
	if err := c.post(ctx, "/api/order/stripe", token, req, &resp); err != nil {
		return "", err
	}
	return resp.SessionURL, nil
}

// VerifyRazorpay confirms a completed Razorpay payment using the
// gateway's callback fields.
func (c *Client) VerifyRazorpay(ctx context.Context, token string, payload map[string]string) error {
	var resp struct{ envelope }
	return c.post(ctx, "/api/order/verifyRazorPay", token, payload, &resp)
}

// VerifyStripe confirms a completed Stripe checkout session.
func (c *Client) VerifyStripe(ctx context.Context, token, orderID, sessionID string) error {
	body := map[string]string{"orderId": orderID, "session_id": sessionID}
	var resp struct{ envelope }
	return c.post(ctx, "/api/order/verifyStripe", token, body, &resp)
}
