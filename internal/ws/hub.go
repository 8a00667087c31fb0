package ws

import (
	"net/http"
	"sync"

	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ManagersRoom is the shared room estate-level updates fan out to.
const ManagersRoom = "managers"

const (
	EventDeviceUpdated       = "deviceUpdated"
	EventEstateDeviceUpdated = "estateDeviceUpdated"
	EventJoinedRoom          = "joinedRoom"
)

type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Hub maintains logical rooms keyed by user id plus the fixed
// managers room. Room membership is client-driven: clients join
// explicitly after connecting, and joins are not authorized here.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

// ServeWS upgrades the connection and starts the client pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Debug("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	c := &Client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
		rooms: make(map[string]struct{}),
	}

	go c.writePump()
	go c.readPump()
}

func (h *Hub) join(room string, c *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[room]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[room] = clients
	}
	clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) leave(room string, c *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
}

// remove drops the client from every room and closes its send
// channel. The hub owns channel shutdown: closing happens under the
// write lock while Emit sends under the read lock, so a fan-out can
// never hit a closed channel.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	for room, clients := range h.rooms {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	close(c.send)
	h.mu.Unlock()
}

// Emit pushes an event to every client in the room. Sends are
// non-blocking and stay under the read lock; slow clients lose the
// message rather than blocking the hub.
func (h *Hub) Emit(room, event string, data any) {
	bytes, err := json.Marshal(&Event{Event: event, Data: data})
	if err != nil {
		zap.L().Error("failed to marshal event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	for c := range h.rooms[room] {
		c.trySend(bytes)
	}
	h.mu.RUnlock()
}

// NotifyDeviceUpdate fans a device change out to the owner's room
// and, for estate-level devices, to the managers room.
func (h *Hub) NotifyDeviceUpdate(d *md.Device) {
	if d.OwnerID != nil {
		h.Emit(d.OwnerID.String(), EventDeviceUpdated, d)
	}

	if d.IsEstateLevel {
		h.Emit(ManagersRoom, EventEstateDeviceUpdated, d)
	}
}

// RoomSize reports the number of clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
