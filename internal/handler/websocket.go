package handler

import (
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/open-sunsama/shell/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientQueueLen = 64
)

// WSMessage is one frame sent to bridge clients
type WSMessage struct {
	Type    string `json:"type"`
	Event   string `json:"event,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
}

// Frame types
const (
	WSTypeEvent  = "event"
	WSTypeReload = "reload"
	WSTypeLog    = "log"
)

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// WebSocketHub mirrors shell events to browser frontends connected over
// WebSocket. It implements the coordinator's UI interface, and as an
// io.Writer it streams log lines.
type WebSocketHub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*wsClient]struct{}
}

func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     loopbackOrigin,
		},
		clients: make(map[*wsClient]struct{}),
	}
}

// loopbackOrigin admits non-browser clients (no Origin header) and pages
// served from the local machine, e.g. a frontend dev server. Any other web
// page the user has open must not read the event and log stream.
func loopbackOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// HandleWebSocket upgrades the request and registers the client
func (h *WebSocketHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] Upgrade failed: %v", err)
		return
	}
	c := &wsClient{conn: conn, send: make(chan []byte, clientQueueLen)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	log.Printf("[WebSocket] Client connected from %s (%d total)", r.RemoteAddr, total)

	go h.writePump(c)
	go h.readPump(c)
}

// ClientCount returns the number of connected clients
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *WebSocketHub) Emit(event string, payload any) error {
	return h.broadcast(WSMessage{Type: WSTypeEvent, Event: event, Payload: payload})
}

func (h *WebSocketHub) Reload() error {
	return h.broadcast(WSMessage{Type: WSTypeReload})
}

// Write sends one log line to every client. It never logs, since it is
// itself a log output.
func (h *WebSocketHub) Write(p []byte) (int, error) {
	_ = h.broadcast(WSMessage{Type: WSTypeLog, Message: string(p)})
	return len(p), nil
}

func (h *WebSocketHub) broadcast(msg WSMessage) error {
	data, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return domain.ErrNoUI
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// 客户端太慢，断开
			h.removeLocked(c)
		}
	}
	return nil
}

func (h *WebSocketHub) remove(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *WebSocketHub) removeLocked(c *wsClient) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Close disconnects every client
func (h *WebSocketHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *WebSocketHub) readPump(c *wsClient) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// inbound frames are ignored; reading keeps control frames flowing
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WebSocketHub) writePump(c *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
