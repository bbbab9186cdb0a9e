package message_repo

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/state"
)

type MessageRepo struct {
	AppState *state.AppState
}

func NewMessageRepo(appState *state.AppState) MessageRepoContract {
	return &MessageRepo{
		AppState: appState,
	}
}

func (r *MessageRepo) Append(ctx context.Context, memberID int, title, content string) (int64, *app_error.AppError) {
	record := entity.Message{
		MemberID: memberID,
		Title:    title,
		Content:  content,
		IsRead:   false,
	}

	if err := r.AppState.DB.WithContext(ctx).Create(&record).Error; err != nil {
		log.Error().Err(err).Int("memberID", memberID).Msg("failed to insert message")
		return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to insert message", "db-error")
	}

	return record.ID, nil
}

func (r *MessageRepo) ListForMember(ctx context.Context, memberID int) ([]entity.Message, *app_error.AppError) {
	var messages []entity.Message

	if err := r.AppState.DB.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		log.Error().Err(err).Int("memberID", memberID).Msg("failed to fetch messages")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch messages", "db-error")
	}

	return messages, nil
}

// MarkRead is idempotent: marking an already-read or missing message
// succeeds without touching anything.
func (r *MessageRepo) MarkRead(ctx context.Context, id int64) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		log.Error().Err(err).Int64("messageID", id).Msg("failed to mark message read")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to mark message read", "db-error")
	}

	return nil
}

func (r *MessageRepo) Delete(ctx context.Context, id int64) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).
		Delete(&entity.Message{}, id).Error; err != nil {
		log.Error().Err(err).Int64("messageID", id).Msg("failed to delete message")
		return app_error.NewAppError(http.StatusInternalServerError, "failed to delete message", "db-error")
	}

	return nil
}
