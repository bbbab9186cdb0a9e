package websocket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Reply(ctx context.Context, memberID int, message string) (string, error) {
	return s.reply, s.err
}

func TestHandleFrame_AuthBindsMember(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.handleFrame([]byte(`{"type":"auth","memberId":7}`))

	assert.Equal(t, 7, c.MemberID())
	got, ok := hub.Registry().Lookup(7)
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestHandleFrame_ReauthRebindsLastWins(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.handleFrame([]byte(`{"type":"auth","memberId":7}`))
	c.handleFrame([]byte(`{"type":"auth","memberId":8}`))

	assert.Equal(t, 8, c.MemberID())
	_, ok := hub.Registry().Lookup(7)
	assert.False(t, ok, "previous identity must be released")
	got, ok := hub.Registry().Lookup(8)
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestHandleFrame_AuthInvalidMemberIgnored(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.handleFrame([]byte(`{"type":"auth","memberId":0}`))
	c.handleFrame([]byte(`{"type":"auth","memberId":-3}`))

	assert.Equal(t, 0, c.MemberID())
	assert.Equal(t, 0, hub.Registry().Len())
}

func TestHandleFrame_JoinRoom(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.handleFrame([]byte(`{"type":"join-room","room":"activity-5"}`))

	members := hub.Rooms().Members("activity-5")
	require.Len(t, members, 1)
	assert.Same(t, c, members[0])
}

func TestHandleFrame_JoinRoomWithoutAuth(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	// Room membership is orthogonal to authentication.
	c := newTestClient(t, hub, "c1")
	c.handleFrame([]byte(`{"type":"join-room","room":"activity-5"}`))

	assert.Equal(t, 0, c.MemberID())
	assert.Len(t, hub.Rooms().Members("activity-5"), 1)
}

func TestHandleFrame_MalformedFrameTolerated(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")

	// None of these may panic or change any state.
	c.handleFrame([]byte(`not json at all`))
	c.handleFrame([]byte(`{"type":"auth","memberId":"not-a-number"}`))
	c.handleFrame([]byte(`{"type":"mystery"}`))
	c.handleFrame([]byte(``))

	assert.Equal(t, 0, c.MemberID())
	assert.Equal(t, 0, hub.Registry().Len())
	assert.Equal(t, 0, hub.Rooms().RoomCount())
	assert.True(t, c.IsClientActive(), "bad frames must not close the connection")
}

func TestHandleFrame_ChatRepliesAsAI(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.responder = &stubResponder{reply: "您好，有什麼可以幫忙？"}

	c.handleFrame([]byte(`{"type":"chat","sender":"user","message":"請問活動地點"}`))

	frame := receiveFrame(t, c)
	assert.Equal(t, "chat", frame["type"])
	assert.Equal(t, "ai", frame["sender"])
	assert.Equal(t, "您好，有什麼可以幫忙？", frame["message"])
}

func TestHandleFrame_ChatResponderErrorSwallowed(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.responder = &stubResponder{err: errors.New("completion backend down")}

	c.handleFrame([]byte(`{"type":"chat","sender":"user","message":"hi"}`))

	select {
	case data := <-c.Send:
		t.Fatalf("no reply expected, got %s", data)
	case <-time.After(100 * time.Millisecond):
	}
	assert.True(t, c.IsClientActive())
}

func TestHandleFrame_ChatFromNonUserIgnored(t *testing.T) {
	hub := NewHub()
	defer hub.cancel()

	c := newTestClient(t, hub, "c1")
	c.responder = &stubResponder{reply: "should not be sent"}

	c.handleFrame([]byte(`{"type":"chat","sender":"ai","message":"echo"}`))

	select {
	case <-c.Send:
		t.Fatal("non-user chat frames must not trigger a reply")
	case <-time.After(100 * time.Millisecond):
	}
}
