package websocket

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: limit your cors, don't get true so easy in production
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AuthenticatorFunc resolves an optional member identity from the upgrade
// request. Returning 0 with no error means anonymous: the client is
// expected to send an auth frame later.
type AuthenticatorFunc func(r *http.Request) (int, error)

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

type WebSocketHandler struct {
	MaxConnections int
	RateLimit      struct {
		Enabled          bool
		ConnectionsPerIP int
	}

	hub           *Hub
	authenticator AuthenticatorFunc
	responder     ChatResponder

	connCount atomic.Int64
	ipMu      sync.Mutex
	ipConns   map[string]int
}

func NewWebSocketHandler(hub *Hub, authenticator AuthenticatorFunc, responder ChatResponder) *WebSocketHandler {
	h := &WebSocketHandler{
		MaxConnections: 10000,
		hub:            hub,
		authenticator:  authenticator,
		responder:      responder,
		ipConns:        make(map[string]int),
	}
	h.RateLimit.Enabled = true
	h.RateLimit.ConnectionsPerIP = 20
	return h
}

// ServeWS upgrades the request and hands the connection to its own
// protocol handler goroutines.
func (h *WebSocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	if h.connCount.Load() >= int64(h.MaxConnections) {
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}

	clientIP := h.getClientIP(r)
	if !h.checkIPLimit(clientIP) {
		http.Error(w, "too many connections from this address", http.StatusTooManyRequests)
		return
	}

	memberID := 0
	if h.authenticator != nil {
		id, err := h.authenticator(r)
		if err != nil {
			log.Warn().Err(err).Str("ip", clientIP).Msg("ws: upgrade auth rejected")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		memberID = id
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws: upgrade failed")
		return
	}

	h.connCount.Add(1)
	h.updateIPCount(clientIP, 1)

	client := newClient(uuid.New().String(), conn, h.hub, h.responder, func() {
		h.connCount.Add(-1)
		h.updateIPCount(clientIP, -1)
	})

	// A verified token on the upgrade request pre-binds the identity; the
	// auth frame can still rebind later, last wins.
	if memberID != 0 {
		client.setMemberID(memberID)
		h.hub.registry.Bind(memberID, client)
	}

	h.hub.OnConnect(client)
}

func (h *WebSocketHandler) checkIPLimit(clientIP string) bool {
	if !h.RateLimit.Enabled {
		return true
	}

	h.ipMu.Lock()
	defer h.ipMu.Unlock()

	return h.ipConns[clientIP] < h.RateLimit.ConnectionsPerIP
}

func (h *WebSocketHandler) updateIPCount(clientIP string, delta int) {
	h.ipMu.Lock()
	h.ipConns[clientIP] += delta
	if h.ipConns[clientIP] <= 0 {
		delete(h.ipConns, clientIP)
	}
	h.ipMu.Unlock()
}

func (h *WebSocketHandler) getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}
