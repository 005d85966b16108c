package client

import (
	"context"
	"strconv"

	"github.com/thakoorchandan/navswara-go/models"
)

// GetProfile fetches the signed-in user's display profile.
func (c *Client) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	var resp struct {
		envelope
		User models.Profile `json:"user"`
	}
	if err := c.get(ctx, "/api/user/me", token, &resp); err != nil {
		return models.Profile{}, err
	}
	return resp.User, nil
}

func (c *Client) ListAddresses(ctx context.Context, token string) ([]models.Address, error) {
	var resp struct {
		envelope
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.get(ctx, "/api/user/me/addresses", token, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// AddAddress stores a new address and returns the record as the server
// saved it.
func (c *Client) AddAddress(ctx context.Context, token string, addr models.Address) (models.Address, error) {
	var resp struct {
		envelope
		Address models.Address `json:"address"`
	}
	if err := c.post(ctx, "/api/user/me/addresses", token, addr, &resp); err != nil {
		return models.Address{}, err
	}
	return resp.Address, nil
}

// UpdateAddress replaces the address at a positional index. Positions
// can drift if the server reorders between fetch and update, so callers
// should refetch before relying on an index held across a long gap.
func (c *Client) UpdateAddress(ctx context.Context, token string, index int, addr models.Address) (models.Address, error) {
	var resp struct {
		envelope
		Address models.Address `json:"address"`
	}
	if err := c.put(ctx, "/api/user/me/addresses/"+strconv.Itoa(index), token, addr, &resp); err != nil {
		return models.Address{}, err
	}
	return resp.Address, nil
}

func (c *Client) DeleteAddress(ctx context.Context, token string, index int) error {
	var resp struct{ envelope }
	return c.delete(ctx, "/api/user/me/addresses/"+strconv.Itoa(index), token, &resp)
}

func (c *Client) ListPaymentMethods(ctx context.Context, token string) ([]models.PaymentMethod, error) {
	var resp struct {
		envelope
		PaymentMethods []models.PaymentMethod `json:"paymentMethods"`
	}
	if err := c.get(ctx, "/api/user/me/payments", token, &resp); err != nil {
		return nil, err
	}
	return resp.PaymentMethods, nil
}

func (c *Client) AddPaymentMethod(ctx context.Context, token string, method models.PaymentMethod) (models.PaymentMethod, error) {
	var resp struct {
		envelope
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	}
	if err := c.post(ctx, "/api/user/me/payments", token, method, &resp); err != nil {
		return models.PaymentMethod{}, err
	}
	return resp.PaymentMethod, nil
}

func (c *Client) DeletePaymentMethod(ctx context.Context, token string, index int) error {
	var resp struct{ envelope }
	return c.delete(ctx, "/api/user/me/payments/"+strconv.Itoa(index), token, &resp)
}
