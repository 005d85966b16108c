package shop

import (
	"context"
	"errors"

	"github.com/thakoorchandan/navswara-go/client"
	"github.com/thakoorchandan/navswara-go/models"
)

// ErrEmptyCart is returned when checkout is attempted with no sellable
// cart entries.
var ErrEmptyCart = errors.New("your cart is empty")

// FetchOrders loads the order history; a no-op when signed out.
func (s *Shop) FetchOrders(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingOrders, true)
	defer s.setLoading(&s.loadingOrders, false)

	orders, err := s.api.ListOrders(ctx, token)
	if err != nil {
		s.notify.Error("Failed to load orders")
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	s.broadcast()
	return nil
}

// Orders returns a snapshot of the order history.
func (s *Shop) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderItems snapshots the cart into order line items. Entries whose
// product is not in the loaded catalog are skipped, as are non-positive
// quantities.
func (s *Shop) OrderItems() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.OrderItem
	for pid, sizes := range s.cart {
		product, ok := s.findProduct(pid)
		if !ok {
			continue
		}
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			items = append(items, models.OrderItem{
				Product:      pid,
				Name:         product.Name,
				SelectedSize: size,
				Quantity:     qty,
				UnitPrice:    product.Price,
				TotalPrice:   product.Price * float64(qty),
			})
		}
	}
	return items
}

// buildOrderRequest validates the shipping address and assembles the
// shared checkout payload: snapshotted line items plus the cart amount
// and the delivery fee.
func (s *Shop) buildOrderRequest(addr models.Address) (client.OrderRequest, error) {
	if err := ValidateAddress(addr); err != nil {
		s.notify.Error(err.Error())
		return client.OrderRequest{}, err
	}
	items := s.OrderItems()
	if len(items) == 0 {
		s.notify.Error("Your cart is empty")
		return client.OrderRequest{}, ErrEmptyCart
	}
	return client.OrderRequest{
		ShippingAddress: addr,
		Items:           items,
		Amount:          s.CartAmount() + s.deliveryFee,
	}, nil
}

// PlaceOrder places a cash-on-delivery order for the current cart,
// shipped to addr. The local cart is not cleared here; the server owns
// the post-order cart and RefreshCart picks it up.
func (s *Shop) PlaceOrder(ctx context.Context, addr models.Address) (models.Order, error) {
	req, err := s.buildOrderRequest(addr)
	if err != nil {
		return models.Order{}, err
	}
	token := s.Token()
	order, err := s.api.PlaceOrder(ctx, token, req)
	if err != nil {
		s.notify.Error(err.Error())
		return models.Order{}, err
	}
	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Order placed")
	return order, nil
}

// CheckoutRazorpay creates a hosted Razorpay order; the caller hands
// the returned gateway order to the payment widget and confirms through
// VerifyRazorpay afterwards.
func (s *Shop) CheckoutRazorpay(ctx context.Context, addr models.Address) (models.GatewayOrder, error) {
	req, err := s.buildOrderRequest(addr)
	if err != nil {
		return models.GatewayOrder{}, err
	}
	order, err := s.api.CreateRazorpayOrder(ctx, s.Token(), req)
	if err != nil {
		s.notify.Error(err.Error())
		return models.GatewayOrder{}, err
	}
	return order, nil
}

// CheckoutStripe creates a hosted Stripe checkout session and returns
// the redirect URL; VerifyStripe completes the flow.
func (s *Shop) CheckoutStripe(ctx context.Context, addr models.Address) (string, error) {
	req, err := s.buildOrderRequest(addr)
	if err != nil {
		return "", err
	}
	sessionURL, err := s.api.CreateStripeSession(ctx, s.Token(), req)
	if err != nil {
		s.notify.Error(err.Error())
		return "", err
	}
	return sessionURL, nil
}

// VerifyRazorpay confirms a Razorpay payment with the gateway's
// callback fields and refreshes the order list on success.
func (s *Shop) VerifyRazorpay(ctx context.Context, payload map[string]string) error {
	if err := s.api.VerifyRazorpay(ctx, s.Token(), payload); err != nil {
		s.notify.Error(err.Error())
		return err
	}
	s.notify.Success("Payment verified")
	return s.FetchOrders(ctx)
}

// VerifyStripe confirms a Stripe checkout session. The local cart is
// cleared only once the payment is truly confirmed.
func (s *Shop) VerifyStripe(ctx context.Context, orderID, sessionID string) error {
	if err := s.api.VerifyStripe(ctx, s.Token(), orderID, sessionID); err != nil {
		s.notify.Error(err.Error())
		return err
	}
	s.mu.Lock()
	s.cart = models.CartItems{}
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Payment successful, order placed")
	return s.FetchOrders(ctx)
}

// WatchOrders streams live order status updates, folding each one into
// the local order list as it arrives. The returned channel closes when
// the context is cancelled or the stream drops.
func (s *Shop) WatchOrders(ctx context.Context) (<-chan models.Order, error) {
	token := s.Token()
	if token == "" {
		return nil, errors.New("sign in to watch orders")
	}
	upstream, err := s.api.WatchOrders(ctx, token)
	if err != nil {
		s.notify.Error("Could not open order stream")
		return nil, err
	}

	updates := make(chan models.Order)
	go func() {
		defer close(updates)
		for order := range upstream {
			s.applyOrderUpdate(order)
			select {
			case updates <- order:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}

func (s *Shop) applyOrderUpdate(order models.Order) {
	s.mu.Lock()
	found := false
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			found = true
			break
		}
	}
	if !found {
		s.orders = append(s.orders, order)
	}
	s.mu.Unlock()
	s.broadcast()
}
