package message_repo

import (
	"context"

	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

// MessageRepoContract is the durable notification log. Append failures
// propagate to the caller; losing the persisted record is never
// acceptable, even though losing the live push is.
type MessageRepoContract interface {
	Append(ctx context.Context, memberID int, title, content string) (int64, *app_error.AppError)
	ListForMember(ctx context.Context, memberID int) ([]entity.Message, *app_error.AppError)
	MarkRead(ctx context.Context, id int64) *app_error.AppError
	Delete(ctx context.Context, id int64) *app_error.AppError
}
