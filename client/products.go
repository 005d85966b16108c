package client

import (
	"context"

	"github.com/thakoorchandan/navswara-go/models"
)

// ListProducts fetches the whole catalog. No auth required.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		envelope
		Products []models.Product `json:"products"`
	}
	if err := c.get(ctx, "/api/product/list", "", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}
