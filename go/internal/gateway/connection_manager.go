// Package gateway pushes derived view data to connected browser clients
// over websockets. The push is one-way: the core never reads UI state
// back.
package gateway

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message is the envelope pushed to every client.
type Message struct {
	Channel   string      `json:"channel"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// ConnectionConfig holds configuration for websocket connections.
type ConnectionConfig struct {
	WriteTimeout   time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	CheckOrigin    func(r *http.Request) bool
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:   10 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 1024,
		CheckOrigin:    func(r *http.Request) bool { return true },
	}
}

// connection is one client subscription.
type connection struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// ConnectionManager tracks connected clients and fans broadcast messages
// out to them.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[*connection]bool

	upgrader websocket.Upgrader
	config   ConnectionConfig
}

func NewConnectionManager(cfg ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[*connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		config: cfg,
	}
}

// Notify pushes a payload to every connected client. Fire and forget: a
// slow client's full buffer drops the message for that client only.
func (m *ConnectionManager) Notify(channel string, payload interface{}) {
	msg := Message{Channel: channel, Payload: payload, Timestamp: time.Now()}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to marshal UI push")
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for c := range m.connections {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("conn_id", c.id).Str("channel", channel).Msg("dropping push to slow client")
		}
	}
}

// UpgradeConnection upgrades an HTTP request to a websocket subscription.
func (m *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request) error {
	ws, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &connection{
		id:   uuid.New().String()[:8],
		conn: ws,
		send: make(chan []byte, 16),
	}

	m.mu.Lock()
	m.connections[c] = true
	m.mu.Unlock()

	log.Info().Str("conn_id", c.id).Msg("UI client connected")

	go m.writePump(c)
	go m.readPump(c)
	return nil
}

func (m *ConnectionManager) remove(c *connection) {
	m.mu.Lock()
	if m.connections[c] {
		delete(m.connections, c)
		close(c.send)
	}
	m.mu.Unlock()
	_ = c.conn.Close()
}

func (m *ConnectionManager) writePump(c *connection) {
	ticker := time.NewTicker(m.config.PingInterval)
	defer func() {
		ticker.Stop()
		m.remove(c)
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(m.config.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(m.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames. The UI sends nothing the core consumes;
// reading is only for close/pong handling.
func (m *ConnectionManager) readPump(c *connection) {
	defer m.remove(c)
	c.conn.SetReadLimit(m.config.MaxMessageSize)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			log.Debug().Str("conn_id", c.id).Msg("UI client disconnected")
			return
		}
	}
}

// ConnectionCount returns how many clients are subscribed.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}
