package notify_service

import (
	"context"

	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

type CommentPayload struct {
	CommentID  int64  `json:"comment_id"`
	ActivityID int64  `json:"activity_id"`
	AuthorID   int    `json:"author_id"`
	AuthorRole string `json:"author_role"`
	Content    string `json:"content"`
}

// NotifyServiceContract is the contract mutation handlers consume after a
// successful database write: persist the notification, then nudge any
// online recipient.
type NotifyServiceContract interface {
	// NotifyMember appends the durable record and best-effort pushes it.
	// The returned error reflects persistence only; a missed push never
	// fails the triggering mutation.
	NotifyMember(ctx context.Context, memberID int, title, content string) (int64, *app_error.AppError)

	// CommentPosted broadcasts a fresh comment to the activity's room and
	// notifies the counterpart member (organizer or prior commenter).
	CommentPosted(ctx context.Context, payload CommentPayload, counterpartID int, title, content string) *app_error.AppError
}
