package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Hub owns the two process-wide registries and the dispatch surface over
// them. It is created once at startup and injected wherever a mutation
// flow wants to nudge online clients.
type Hub struct {
	registry *ConnectionRegistry
	rooms    *RoomRegistry

	ctx    context.Context
	cancel context.CancelFunc

	stats   HubStats
	statsMu sync.RWMutex

	cleanupTicker *time.Ticker
}

type HubStats struct {
	TotalRooms       int       `json:"total_rooms"`
	TotalClients     int       `json:"total_clients"`
	TotalConnections int64     `json:"total_connections"`
	MessageSent      int64     `json:"message_sent"`
	LastReset        time.Time `json:"last_reset"`
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	hub := &Hub{
		registry: NewConnectionRegistry(),
		rooms:    NewRoomRegistry(),
		ctx:      ctx,
		cancel:   cancel,
		stats: HubStats{
			LastReset: time.Now(),
		},
		cleanupTicker: time.NewTicker(1 * time.Minute),
	}

	go hub.cleanupRoutine()

	return hub
}

func (h *Hub) Registry() *ConnectionRegistry {
	return h.registry
}

func (h *Hub) Rooms() *RoomRegistry {
	return h.rooms
}

// OnConnect registers a freshly accepted connection with the hub and
// starts its pumps. Identity binding happens later, on the auth frame.
func (h *Hub) OnConnect(client *Client) {
	h.updateStats(func(stats *HubStats) {
		stats.TotalConnections++
	})

	client.Start()

	log.Info().Str("clientID", client.ID).Msg("ws: client connected")
}

func (h *Hub) GetHubStats() HubStats {
	h.statsMu.RLock()
	stats := h.stats
	h.statsMu.RUnlock()

	stats.TotalRooms = h.rooms.RoomCount()
	stats.TotalClients = h.registry.Len()
	return stats
}

// GetRoomStats returns statistics for a room
func (h *Hub) GetRoomStats(roomKey string) map[string]interface{} {
	members := h.rooms.Members(roomKey)

	stats := map[string]interface{}{
		"room_key": roomKey,
		"exists":   false,
	}

	if len(members) == 0 {
		return stats
	}

	activeClients := 0
	uniqueMembers := make(map[int]bool)
	for _, client := range members {
		if client.IsClientActive() {
			activeClients++
			if memberID := client.MemberID(); memberID != 0 {
				uniqueMembers[memberID] = true
			}
		}
	}

	stats["exists"] = true
	stats["total_connections"] = len(members)
	stats["active_connections"] = activeClients
	stats["unique_members"] = len(uniqueMembers)
	return stats
}

func (h *Hub) updateStats(fn func(*HubStats)) {
	h.statsMu.Lock()
	fn(&h.stats)
	h.statsMu.Unlock()
}

func (h *Hub) cleanupRoutine() {
	defer h.cleanupTicker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.cleanupTicker.C:
			h.performCleanup()
		}
	}
}

// performCleanup closes connections that stopped answering pings. Their
// read pumps run the usual once-guarded teardown.
func (h *Hub) performCleanup() {
	now := time.Now()
	inactiveThreshold := 2 * time.Minute

	var toRemove []*Client

	h.registry.mu.RLock()
	for _, client := range h.registry.clients {
		if !client.IsClientActive() || now.Sub(client.GetLastSeen()) > inactiveThreshold {
			toRemove = append(toRemove, client)
		}
	}
	h.registry.mu.RUnlock()

	for _, client := range toRemove {
		log.Info().Str("clientID", client.ID).Int("memberID", client.MemberID()).Msg("ws: cleaning up inactive client")
		client.Close()
	}

	log.Debug().Int("cleaned", len(toRemove)).Msg("ws: cleanup routine completed")
}

// Close gracefully shuts down the hub
func (h *Hub) Close() {
	log.Info().Msg("ws: shutting down hub")

	h.cancel()

	h.registry.mu.RLock()
	allClients := make([]*Client, 0, len(h.registry.clients))
	for _, client := range h.registry.clients {
		allClients = append(allClients, client)
	}
	h.registry.mu.RUnlock()

	for _, client := range allClients {
		client.Close()
	}

	log.Info().Int("clients", len(allClients)).Msg("ws: hub shutdown completed")
}
