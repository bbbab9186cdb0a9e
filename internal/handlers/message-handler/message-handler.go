package message_handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/dtos/message_dto"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	message_repo "github.com/zx0938013408/teamb-server/internal/repo/message"
	"github.com/zx0938013408/teamb-server/state"
)

type MessageHandler struct {
	State *state.AppState
	Repo  message_repo.MessageRepoContract
}

func NewMessageHandler(appState *state.AppState) *MessageHandler {
	return &MessageHandler{
		State: appState,
		Repo:  message_repo.NewMessageRepo(appState),
	}
}

func (h *MessageHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberId"))
	if err != nil || memberID <= 0 {
		return app_error.NewAppError(http.StatusBadRequest, "invalid member id", "member-id")
	}

	messages, appErr := h.Repo.ListForMember(r.Context(), memberID)
	if appErr != nil {
		return appErr
	}

	items := make([]message_dto.MessageItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, message_dto.MessageItem{
			ID:        msg.ID,
			MemberID:  msg.MemberID,
			Title:     msg.Title,
			Content:   msg.Content,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt,
		})
	}

	resp := handlers.CreateResponse("messages fetched", message_dto.ListMessagesResponse{Messages: items}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *MessageHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return app_error.NewAppError(http.StatusBadRequest, "invalid message id", "message-id")
	}

	if appErr := h.Repo.MarkRead(r.Context(), id); appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("message marked read", struct{}{}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *MessageHandler) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return app_error.NewAppError(http.StatusBadRequest, "invalid message id", "message-id")
	}

	if appErr := h.Repo.Delete(r.Context(), id); appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("message deleted", struct{}{}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}
