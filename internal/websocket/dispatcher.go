package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Notification is the payload pushed alongside a persisted message. The
// durable record is written first; this is only the low-latency copy.
type Notification struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type pushEnvelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type commentEnvelope struct {
	Type       string `json:"type"`
	ActivityID int64  `json:"activity_id"`
	Data       any    `json:"data"`
}

// ActivityRoom is the room key comment broadcasts use for an activity.
func ActivityRoom(activityID int64) string {
	return fmt.Sprintf("activity-%d", activityID)
}

// PushToMember delivers a new-message envelope to the member's bound
// connection, if any. Best effort: an offline member, a dead socket or a
// full buffer all degrade to a silent no-op. Callers must already have
// persisted the message and must never treat a missed push as a failure.
func (h *Hub) PushToMember(memberID int, notification Notification) {
	client, ok := h.registry.Lookup(memberID)
	if !ok || !client.IsClientActive() {
		log.Debug().Int("memberID", memberID).Msg("ws: member offline, push skipped")
		return
	}

	data, err := json.Marshal(pushEnvelope{
		Type: "new-message",
		Data: notification,
	})
	if err != nil {
		log.Error().Err(err).Int("memberID", memberID).Msg("ws: failed to marshal push")
		return
	}

	if client.enqueue(data) {
		h.updateStats(func(stats *HubStats) {
			stats.MessageSent++
		})
	}
}

// BroadcastToActivity fans a new-comment envelope out to every connection
// in the activity's room. Each send is isolated: one dead connection
// never aborts delivery to the rest.
func (h *Hub) BroadcastToActivity(activityID int64, data any) {
	payload, err := json.Marshal(commentEnvelope{
		Type:       "new-comment",
		ActivityID: activityID,
		Data:       data,
	})
	if err != nil {
		log.Error().Err(err).Int64("activityID", activityID).Msg("ws: failed to marshal broadcast")
		return
	}

	members := h.rooms.Members(ActivityRoom(activityID))
	targets := make([]*Client, 0, len(members))
	for _, client := range members {
		if client.IsClientActive() {
			targets = append(targets, client)
		}
	}

	if len(targets) == 0 {
		return
	}

	// Send outside any registry lock, bounded fan-out.
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 50)

	sent := 0
	var sentMu sync.Mutex
	for _, client := range targets {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() {
				<-semaphore
			}()

			if c.enqueue(payload) {
				sentMu.Lock()
				sent++
				sentMu.Unlock()
			}
		}(client)
	}

	wg.Wait()

	h.updateStats(func(stats *HubStats) {
		stats.MessageSent += int64(sent)
	})

	log.Debug().Int64("activityID", activityID).Int("targets", len(targets)).Msg("ws: comment broadcast completed")
}
