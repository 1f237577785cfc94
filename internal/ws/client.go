package ws

import (
	"time"

	"github.com/antera/antera-backend/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	// sendQueueSize bounds per-connection backlog; the hub drops the
	// client when the queue is full
	sendQueueSize = 256

	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second // under pongTimeout so pongs keep arriving
	readLimit    = 512              // inbound frames carry no payload we use
)

// Client is one WebSocket connection owned by a user
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

// NewClient wraps an upgraded connection for the hub
func NewClient(hub *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		userID: userID,
	}
}

// ReadPump consumes inbound frames until the peer goes away. The server
// is push-only, so payloads are discarded; reading still drives pong
// handling and close detection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.GetLogger().Debug().
					Err(err).
					Uint("user_id", c.userID).
					Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

// WritePump flushes queued events and keeps the connection alive with
// pings. Exits when the hub closes the send channel or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
