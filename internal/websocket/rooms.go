package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// RoomRegistry tracks which connections joined which broadcast rooms.
// A connection may belong to several rooms at once; join is idempotent
// and LeaveAll clears every membership on close.
type RoomRegistry struct {
	mu         sync.RWMutex
	rooms      map[string]map[*Client]struct{}
	membership map[*Client]map[string]struct{}
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms:      make(map[string]map[*Client]struct{}),
		membership: make(map[*Client]map[string]struct{}),
	}
}

func (r *RoomRegistry) Join(roomKey string, client *Client) {
	r.mu.Lock()
	if r.rooms[roomKey] == nil {
		r.rooms[roomKey] = make(map[*Client]struct{})
	}
	r.rooms[roomKey][client] = struct{}{}

	if r.membership[client] == nil {
		r.membership[client] = make(map[string]struct{})
	}
	r.membership[client][roomKey] = struct{}{}
	size := len(r.rooms[roomKey])
	r.mu.Unlock()

	log.Info().Str("roomKey", roomKey).Str("clientID", client.ID).Int("roomSize", size).Msg("ws: client joined room")
}

// LeaveAll is called unconditionally on connection close, whether or not
// the connection ever joined a room.
func (r *RoomRegistry) LeaveAll(client *Client) {
	r.mu.Lock()
	for roomKey := range r.membership[client] {
		if clients, ok := r.rooms[roomKey]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(r.rooms, roomKey)
			}
		}
	}
	delete(r.membership, client)
	r.mu.Unlock()
}

// Members returns a snapshot of the room, so a connection closing mid
// broadcast cannot corrupt iteration.
func (r *RoomRegistry) Members(roomKey string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients, ok := r.rooms[roomKey]
	if !ok {
		return nil
	}

	snapshot := make([]*Client, 0, len(clients))
	for client := range clients {
		snapshot = append(snapshot, client)
	}
	return snapshot
}

func (r *RoomRegistry) RoomsOf(client *Client) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var keys []string
	for roomKey := range r.membership[client] {
		keys = append(keys, roomKey)
	}
	return keys
}

func (r *RoomRegistry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms)
}
