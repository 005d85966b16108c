package client

import (
	"context"

	"github.com/thakoorchandan/navswara-go/models"
)

// GetCart fetches the server-side cart for the signed-in user.
func (c *Client) GetCart(ctx context.Context, token string) (models.CartItems, error) {
	var resp struct {
		envelope
		CartData models.CartItems `json:"cartData"`
	}
	if err := c.post(ctx, "/api/cart/get", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.CartData == nil {
		return models.CartItems{}, nil
	}
	return resp.CartData, nil
}

// AddCartItem asks the server to increment (itemID, size) by one. The
// response is an acknowledgement only; callers keep their local cart as
// the authoritative view between syncs.
func (c *Client) AddCartItem(ctx context.Context, token, itemID, size string) error {
	body := map[string]string{"itemId": itemID, "size": size}
	var resp struct{ envelope }
	return c.post(ctx, "/api/cart/add", token, body, &resp)
}

// UpdateCartItem sets an absolute quantity for (itemID, size); zero
// removes the entry server-side.
func (c *Client) UpdateCartItem(ctx context.Context, token, itemID, size string, quantity int) error {
	body := map[string]any{"itemId": itemID, "size": size, "quantity": quantity}
	var resp struct{ envelope }
	return c.post(ctx, "/api/cart/update", token, body, &resp)
}
