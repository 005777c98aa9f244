package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is one order lifecycle change pushed to back-office screens.
type OrderEvent struct {
	Type         string    `json:"type"` // created | status_changed | cancelled
	OrderID      uint      `json:"orderId"`
	Number       string    `json:"number"`
	RestaurantID uint      `json:"restaurantId"`
	OrderStatus  string    `json:"orderStatus"`
	Total        int64     `json:"total"`
	At           time.Time `json:"at"`
}

// OrderFeed fans order events out to websocket clients subscribed per
// restaurant. Clients are kitchen/back-office screens; they only read.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	conn         *websocket.Conn
	restaurantID uint
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderFeed) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.restaurantID] == nil {
				h.clients[sub.restaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.restaurantID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.restaurantID][sub.conn]; ok {
				delete(h.clients[sub.restaurantID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish never blocks the caller; a full buffer drops the event, the
// screens re-sync on their next poll anyway.
func (h *OrderFeed) Publish(ev OrderEvent) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("order feed full, dropping event for order %d", ev.OrderID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/restaurants/:id/orders
func (h *OrderFeed) HandleWebSocket(c *gin.Context) {
	restID64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || restID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid restaurant id"})
		return
	}
	restID := uint(restID64)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{conn: conn, restaurantID: restID}
	h.register <- sub

	// drain reads to detect disconnects; clients send nothing meaningful
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
