package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/thakoorchandan/navswara-go/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /ws/orders. Clients hold the connection open and receive every
// order created or advanced while subscribed.
func (s *Server) orderWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	s.wsMu.Lock()
	s.wsClients[conn] = true
	s.wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.wsMu.Lock()
			delete(s.wsClients, conn)
			s.wsMu.Unlock()
			break
		}
	}
}

// Subscribers reports how many websocket clients are currently
// registered. Registration happens after the handshake completes, so
// callers that subscribe and immediately mutate orders should wait for
// this to tick up.
func (s *Server) Subscribers() int {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	return len(s.wsClients)
}

func (s *Server) broadcastOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	for client := range s.wsClients {
		client.WriteMessage(websocket.TextMessage, data) //nolint:errcheck // dead clients drop out on their own read loop
	}
}
