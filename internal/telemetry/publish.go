package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dbehnke/dsd-go/pkg/logger"
	"github.com/gorilla/websocket"
)

// wsClient is one connected UI consumer.
type wsClient struct {
	id       string
	conn     *websocket.Conn
	messages chan []byte
}

// WebHub fans a Publisher's snapshots out to websocket-connected UI
// consumers, exposing the same publish_snapshot/request_redraw pair
// over the wire that Publisher exposes in-process. Grounded directly
// on the teacher's pkg/web/websocket.go WebSocketHub: register/
// unregister channels, a buffered broadcast channel, and a per-client
// writer goroutine, simplified to a single message type (snapshot)
// instead of the teacher's multi-event broadcast taxonomy.
type WebHub struct {
	mu       sync.RWMutex
	clients  map[*wsClient]bool
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewWebHub builds a WebHub over log for diagnostics.
func NewWebHub(log *logger.Logger) *WebHub {
	return &WebHub{
		clients: make(map[*wsClient]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

type snapshotPayload struct {
	Time    time.Time `json:"time"`
	Slot0   []Event   `json:"slot0"`
	Slot1   []Event   `json:"slot1"`
	Counter Counters  `json:"counters"`
}

// BroadcastSnapshot pushes s to every currently connected client. Slow
// or stalled clients are skipped rather than allowed to back-pressure
// the decode path.
func (h *WebHub) BroadcastSnapshot(s Snapshot) {
	payload := snapshotPayload{Time: s.Time, Slot0: s.Slot0, Slot1: s.Slot1, Counter: s.Counter}
	data, err := json.Marshal(payload)
	if err != nil {
		if h.log != nil {
			h.log.Error("failed to marshal telemetry snapshot", logger.Error(err))
		}
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.messages <- data:
		default:
			if h.log != nil {
				h.log.Warn("telemetry client buffer full, skipping", logger.String("client_id", client.id))
			}
		}
	}
}

// Handler returns an HTTP handler that upgrades to a websocket
// connection and streams snapshots (request_redraw) as they are
// broadcast (publish_snapshot).
func (h *WebHub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "websocket upgrade failed", http.StatusBadRequest)
			return
		}
		client := &wsClient{id: r.RemoteAddr, conn: conn, messages: make(chan []byte, 32)}

		h.mu.Lock()
		h.clients[client] = true
		h.mu.Unlock()

		go func() {
			defer func() {
				h.mu.Lock()
				delete(h.clients, client)
				h.mu.Unlock()
				_ = client.conn.Close()
				close(client.messages)
			}()
			client.conn.SetReadLimit(1024)
			for {
				if _, _, err := client.conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		go func() {
			for msg := range client.messages {
				if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()
	})
}

// ClientCount reports the number of currently connected UI consumers.
func (h *WebHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
