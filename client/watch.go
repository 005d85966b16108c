package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/thakoorchandan/navswara-go/models"
)

// WatchOrders subscribes to the order status stream. Updated orders are
// delivered on the returned channel until the context is cancelled or
// the connection drops, at which point the channel is closed.
func (c *Client) WatchOrders(ctx context.Context, token string) (<-chan models.Order, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws/orders"

	header := http.Header{}
	if token != "" {
		header.Set("token", token)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, err
	}

	updates := make(chan models.Order)
	go func() {
		defer close(updates)
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var order models.Order
			if err := json.Unmarshal(data, &order); err != nil {
				continue
			}
			select {
			case updates <- order:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	return updates, nil
}
