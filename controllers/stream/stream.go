// Package streamControllers pushes store changes to connected frontends
// over a websocket, the gateway's stand-in for context re-renders.
package streamControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/trendora/storefront-api/cart"
	"github.com/trendora/storefront-api/models"
	"github.com/trendora/storefront-api/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type event struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

// Hub fans store-change events out to every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub(bus EventBus.Bus) (*Hub, error) {
	h := &Hub{clients: make(map[*websocket.Conn]bool)}

	if err := bus.Subscribe(cart.TopicChanged, func(entries []models.CartEntry) {
		h.broadcast(cart.TopicChanged, gin.H{"items": entries})
	}); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(session.TopicChanged, func(sess *models.Session) {
		// Tokens stay inside the process; only the profile goes out.
		var payload gin.H
		if sess != nil {
			payload = gin.H{"name": sess.Name, "email": sess.Email}
		}
		h.broadcast(session.TopicChanged, payload)
	}); err != nil {
		return nil, err
	}

	return h, nil
}

// Handle upgrades the connection and keeps it registered until the peer
// goes away.
//
// GET /ws/updates
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

func (h *Hub) broadcast(topic string, payload any) {
	data, err := json.Marshal(event{Topic: topic, Payload: payload})
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}
