package ws

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type clientMessage struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
}

type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
}

// trySend queues a message without blocking; clients that cannot
// keep up lose the message.
func (c *Client) trySend(bytes []byte) {
	select {
	case c.send <- bytes:
	default:
		zap.L().Debug("dropping message for slow websocket client")
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		if err := c.conn.Close(); err != nil {
			zap.L().Debug("failed to close websocket connection", zap.Error(err))
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(
		func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(pongWait))
		},
	)

	for {
		_, bytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket read error", zap.Error(err))
			}
			return
		}

		msg := clientMessage{}
		if err = json.Unmarshal(bytes, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "join":
			if msg.Room == "" {
				continue
			}
			c.hub.join(msg.Room, c)
			c.rooms[msg.Room] = struct{}{}

			if ack, err := json.Marshal(&Event{Event: EventJoinedRoom, Data: map[string]string{"room": msg.Room}}); err == nil {
				c.trySend(ack)
			}
		case "leave":
			if msg.Room == "" {
				continue
			}
			c.hub.leave(msg.Room, c)
			delete(c.rooms, msg.Room)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			zap.L().Debug("failed to close websocket connection", zap.Error(err))
		}
	}()

	for {
		select {
		case bytes, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
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
