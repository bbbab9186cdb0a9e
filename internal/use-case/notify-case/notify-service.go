package notify_service

import (
	"context"

	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	message_repo "github.com/zx0938013408/teamb-server/internal/repo/message"
	"github.com/zx0938013408/teamb-server/internal/websocket"
	"github.com/zx0938013408/teamb-server/state"
)

// Pusher is the slice of the hub this service needs; satisfied by
// *websocket.Hub, faked in tests.
type Pusher interface {
	PushToMember(memberID int, notification websocket.Notification)
	BroadcastToActivity(activityID int64, data any)
}

type NotifyService struct {
	AppState    *state.AppState
	MessageRepo message_repo.MessageRepoContract
	Hub         Pusher
}

func NewNotifyService(appState *state.AppState, hub Pusher) NotifyServiceContract {
	return &NotifyService{
		AppState:    appState,
		MessageRepo: message_repo.NewMessageRepo(appState),
		Hub:         hub,
	}
}

// NotifyMember writes the durable record first; the push is only a nudge
// for a client that happens to be online right now.
func (s *NotifyService) NotifyMember(ctx context.Context, memberID int, title, content string) (int64, *app_error.AppError) {
	id, err := s.MessageRepo.Append(ctx, memberID, title, content)
	if err != nil {
		return 0, err
	}

	s.Hub.PushToMember(memberID, websocket.Notification{
		Title:   title,
		Content: content,
	})

	return id, nil
}

func (s *NotifyService) CommentPosted(ctx context.Context, payload CommentPayload, counterpartID int, title, content string) *app_error.AppError {
	s.Hub.BroadcastToActivity(payload.ActivityID, payload)

	if counterpartID == 0 || counterpartID == payload.AuthorID {
		return nil
	}

	_, err := s.NotifyMember(ctx, counterpartID, title, content)
	return err
}
