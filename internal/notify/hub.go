package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/gorilla/websocket"
)

const (
	sendBufferSize      = 64
	broadcastBufferSize = 256
	writeWait           = 10 * time.Second
	pongWait            = 60 * time.Second
	pingPeriod          = pongWait * 9 / 10
)

type client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	orderID string
}

// Hub рассылает события заказов подключенным websocket клиентам.
// Клиент может подписаться на один заказ через параметр order_id.
type Hub struct {
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan entities.OrderEvent
	clients    map[*client]struct{}
	count      atomic.Int64
	done       chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With(slog.String("notifier", "ws")),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan entities.OrderEvent, broadcastBufferSize),
		clients:    make(map[*client]struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Start(ctx context.Context) error {
	go h.Run(ctx)
	return nil
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
		case c := <-h.unregister:
			h.remove(c)
		case event := <-h.broadcast:
			msg, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("failed to marshal order event", slog.Any("error", err))
				continue
			}
			for c := range h.clients {
				if c.orderID != "" && c.orderID != event.OrderID {
					continue
				}
				select {
				case c.send <- msg:
				default:
					// Медленный клиент отключается
					h.remove(c)
				}
			}
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.count.Add(-1)
}

// Clients количество подключенных клиентов.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

func (h *Hub) Notify(ctx context.Context, event entities.OrderEvent) {
	select {
	case h.broadcast <- event:
	case <-h.done:
	default:
		h.logger.WarnContext(ctx, "order event dropped", slog.String("order_id", event.OrderID))
	}
}

// ServeWS обрабатывает GET /ws/orders.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		orderID: r.URL.Query().Get("order_id"),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
