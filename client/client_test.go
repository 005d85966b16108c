package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessFalseBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success": false,
			"message": "Product does not exist",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.AddCartItem(context.Background(), "tok", "ghost", "M")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Product does not exist", apiErr.Message)
}

func TestTokenHeaderSentWhenPresent(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("token")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "cartData": map[string]any{}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetCart(context.Background(), "session-token")
	require.NoError(t, err)
	require.Equal(t, "session-token", gotToken)
}

func TestNoTokenHeaderOnPublicCalls(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Token"]
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "products": []any{}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.False(t, sawHeader, "public calls must not carry a token header")
}

func TestTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	c := New(srv.URL)
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr), "transport failures are not API rejections")
}

func TestGetCartNilBecomesEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	cart, err := c.GetCart(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Empty(t, cart)
}
