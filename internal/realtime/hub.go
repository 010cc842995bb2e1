package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
	"github.com/GeraldMcToaster/EcoWars/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans match snapshots out to websocket subscribers. Clients subscribe
// per match and receive the full state after every accepted action.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: map[string]map[*websocket.Conn]struct{}{}}
}

// Subscribe upgrades the request and registers the connection for matchID.
// A reader goroutine drains the connection so close frames are noticed and
// the subscription is dropped.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, matchID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.subscribers[matchID] == nil {
		h.subscribers[matchID] = map[*websocket.Conn]struct{}{}
	}
	h.subscribers[matchID][conn] = struct{}{}
	h.mu.Unlock()

	go h.drain(matchID, conn)
	return nil
}

func (h *Hub) drain(matchID string, conn *websocket.Conn) {
	defer h.unsubscribe(matchID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) unsubscribe(matchID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	if conns := h.subscribers[matchID]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subscribers, matchID)
		}
	}
}

// BroadcastMatch sends the full match snapshot to every subscriber of the
// match. Connections that fail to write are dropped.
func (h *Hub) BroadcastMatch(matchID string, m *game.MatchState) {
	payload, err := json.Marshal(m)
	if err != nil {
		logging.Error("Failed to encode match snapshot", err, logging.Fields{"match_id": matchID})
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[matchID]))
	for conn := range h.subscribers[matchID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.unsubscribe(matchID, conn)
		}
	}
}
