package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// ConnectionRegistry maps a member id to its single live connection.
// Binding is last-authenticated-wins: a fresh login replaces whatever
// connection the member had before, it never multiplexes.
type ConnectionRegistry struct {
	mu      sync.RWMutex
	clients map[int]*Client
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		clients: make(map[int]*Client),
	}
}

// Bind replaces any existing entry for memberID and returns the evicted
// client, if any. It never fails.
func (r *ConnectionRegistry) Bind(memberID int, client *Client) *Client {
	r.mu.Lock()
	prev := r.clients[memberID]
	if prev == client {
		r.mu.Unlock()
		return nil
	}
	r.clients[memberID] = client
	r.mu.Unlock()

	log.Info().Int("memberID", memberID).Str("clientID", client.ID).Msg("ws: member bound")
	return prev
}

func (r *ConnectionRegistry) Lookup(memberID int) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[memberID]
	return client, ok
}

// Unbind removes the entry only if it still points at client. A stale
// disconnect handler must not evict the newer connection a reconnecting
// member already bound.
func (r *ConnectionRegistry) Unbind(memberID int, client *Client) {
	r.mu.Lock()
	if current, ok := r.clients[memberID]; ok && current == client {
		delete(r.clients, memberID)
		log.Info().Int("memberID", memberID).Str("clientID", client.ID).Msg("ws: member unbound")
	}
	r.mu.Unlock()
}

func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}
