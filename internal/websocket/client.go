package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20 // 1 MB
)

const (
	stateOpen int32 = iota
	stateClosing
	stateClosed
)

// Client owns one duplex channel for its whole lifetime. The registries
// only hold back-references; teardown is driven from here and runs the
// cleanup exactly once no matter which state the connection closed from.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	ConnectedAt time.Time

	hub       *Hub
	responder ChatResponder

	mu       sync.RWMutex
	memberID int // 0 until an auth frame binds an identity
	lastSeen time.Time

	state     atomic.Int32
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	onClose   func()
}

func newClient(id string, conn *websocket.Conn, hub *Hub, responder ChatResponder, onClose func()) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		ID:          id,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		ConnectedAt: time.Now(),
		hub:         hub,
		responder:   responder,
		lastSeen:    time.Now(),
		ctx:         ctx,
		cancel:      cancel,
		onClose:     onClose,
	}
}

func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) MemberID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.memberID
}

func (c *Client) setMemberID(memberID int) {
	c.mu.Lock()
	c.memberID = memberID
	c.mu.Unlock()
}

func (c *Client) IsClientActive() bool {
	return c.state.Load() == stateOpen
}

func (c *Client) GetLastSeen() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastSeen
}

func (c *Client) touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

// enqueue hands data to the write pump without ever blocking the caller.
// A full buffer means a slow consumer: the frame is dropped and the
// connection is scheduled for teardown.
func (c *Client) enqueue(data []byte) bool {
	if !c.IsClientActive() {
		return false
	}

	select {
	case c.Send <- data:
		return true
	case <-c.ctx.Done():
		return false
	default:
		log.Warn().Str("clientID", c.ID).Msg("ws: slow consumer, dropping message")
		go c.Close()
		return false
	}
}

// Close tears the connection down from outside the pumps (hub cleanup,
// slow consumer eviction). The read pump's exit path runs the same
// once-guarded cleanup.
func (c *Client) Close() {
	c.state.CompareAndSwap(stateOpen, stateClosing)
	_ = c.Conn.Close()
}

// cleanup releases every registry reference held for this connection.
// It must not depend on a healthy transport. Send is never closed: a
// dispatcher that raced past the active check may still enqueue into the
// buffer, and those frames are simply never written.
func (c *Client) cleanup() {
	c.closeOnce.Do(func() {
		c.state.Store(stateClosed)
		c.cancel()

		if memberID := c.MemberID(); memberID != 0 {
			c.hub.registry.Unbind(memberID, c)
		}
		c.hub.rooms.LeaveAll(c)

		_ = c.Conn.Close()

		if c.onClose != nil {
			c.onClose()
		}

		log.Info().Str("clientID", c.ID).Int("memberID", c.MemberID()).Msg("ws: client closed")
	})
}

// writePump: take data from c.Send and send to socket + ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			if _, err := w.Write(msg); err != nil {
				_ = w.Close()
				return
			}

			_ = w.Close()

		case <-c.ctx.Done():
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump: reads inbound frames and drives the protocol state machine,
// plus pong handling for keep-alive.
func (c *Client) readPump() {
	defer c.cleanup()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		c.touch()
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("clientID", c.ID).Msg("ws: unexpected close")
			}
			break
		}

		c.touch()
		c.handleFrame(data)
	}
}
