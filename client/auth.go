package client

import "context"

type authResponse struct {
	envelope
	Token string `json:"token"`
}

// Register creates a new account and returns its session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp authResponse
	if err := c.post(ctx, "/api/user/register", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.post(ctx, "/api/user/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
