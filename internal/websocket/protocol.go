package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	frameAuth     = "auth"
	frameJoinRoom = "join-room"
	frameChat     = "chat"
)

type inboundEnvelope struct {
	Type string `json:"type"`
}

type authFrame struct {
	MemberID int `json:"memberId"`
}

type joinRoomFrame struct {
	Room string `json:"room"`
}

type chatFrame struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type chatReply struct {
	Type    string `json:"type"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// ChatResponder answers customer-service chat frames. The production
// implementation calls an AI completion API; it lives outside this package.
type ChatResponder interface {
	Reply(ctx context.Context, memberID int, message string) (string, error)
}

// handleFrame routes one inbound frame. Malformed frames are logged and
// swallowed; a single bad frame never costs the client its connection.
func (c *Client) handleFrame(raw []byte) {
	var envelope inboundEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Warn().Err(err).Str("clientID", c.ID).Msg("ws: malformed frame")
		return
	}

	switch envelope.Type {
	case frameAuth:
		var frame authFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Warn().Err(err).Str("clientID", c.ID).Msg("ws: malformed auth frame")
			return
		}
		c.handleAuth(frame)

	case frameJoinRoom:
		var frame joinRoomFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Warn().Err(err).Str("clientID", c.ID).Msg("ws: malformed join-room frame")
			return
		}
		c.handleJoinRoom(frame)

	case frameChat:
		var frame chatFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Warn().Err(err).Str("clientID", c.ID).Msg("ws: malformed chat frame")
			return
		}
		c.handleChat(frame)

	default:
		log.Warn().Str("clientID", c.ID).Str("type", envelope.Type).Msg("ws: unknown frame type")
	}
}

// handleAuth binds the connection under the claimed identity, last wins.
// Re-auth under a different identity releases the old binding first, but
// only if this connection still owns it.
func (c *Client) handleAuth(frame authFrame) {
	if frame.MemberID <= 0 {
		log.Warn().Str("clientID", c.ID).Int("memberID", frame.MemberID).Msg("ws: auth frame with invalid member id")
		return
	}

	prev := c.MemberID()
	if prev == frame.MemberID {
		return
	}
	if prev != 0 {
		c.hub.registry.Unbind(prev, c)
	}

	c.setMemberID(frame.MemberID)
	if evicted := c.hub.registry.Bind(frame.MemberID, c); evicted != nil {
		// The member reconnected before the old socket noticed. The old
		// connection keeps running until its transport dies, but it no
		// longer receives member-targeted pushes.
		log.Info().Int("memberID", frame.MemberID).Str("evictedClientID", evicted.ID).Msg("ws: replaced previous connection for member")
	}
}

func (c *Client) handleJoinRoom(frame joinRoomFrame) {
	if frame.Room == "" {
		log.Warn().Str("clientID", c.ID).Msg("ws: join-room frame without room key")
		return
	}

	c.hub.rooms.Join(frame.Room, c)
}

// handleChat forwards a user chat line to the responder and writes the
// reply back on this connection. Responder failures are logged only.
func (c *Client) handleChat(frame chatFrame) {
	if frame.Sender != "user" || c.responder == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, 30*time.Second)
		defer cancel()

		reply, err := c.responder.Reply(ctx, c.MemberID(), frame.Message)
		if err != nil {
			log.Error().Err(err).Str("clientID", c.ID).Msg("ws: chat responder failed")
			return
		}

		data, err := json.Marshal(chatReply{
			Type:    frameChat,
			Sender:  "ai",
			Message: reply,
		})
		if err != nil {
			log.Error().Err(err).Msg("ws: failed to marshal chat reply")
			return
		}

		c.enqueue(data)
	}()
}
