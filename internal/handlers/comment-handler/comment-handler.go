package comment_handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/zx0938013408/teamb-server/internal/dtos/comment_dto"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	notify_service "github.com/zx0938013408/teamb-server/internal/use-case/notify-case"
	"github.com/zx0938013408/teamb-server/state"
)

// CommentHandler is the notification edge of the comment flow. The
// comment row itself is inserted by the activity subsystem before this
// endpoint is called.
type CommentHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Notify   notify_service.NotifyServiceContract
}

func NewCommentHandler(appState *state.AppState, notify notify_service.NotifyServiceContract) *CommentHandler {
	return &CommentHandler{
		State:    appState,
		Validate: validator.New(),
		Notify:   notify,
	}
}

func (h *CommentHandler) HandleCommentPosted(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	activityID, err := strconv.ParseInt(chi.URLParam(r, "activityId"), 10, 64)
	if err != nil || activityID <= 0 {
		return app_error.NewAppError(http.StatusBadRequest, "invalid activity id", "activity-id")
	}

	var req comment_dto.CreateCommentRequest
	defer r.Body.Close()

	if err := handlers.DecodeJSON(r.Body, &req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "missing required comment fields", "body")
	}

	title := "活動留言回覆"
	if req.AuthorRole == "member" {
		title = "活動新留言"
	}
	content := fmt.Sprintf("活動 %d 有新留言：%s", activityID, req.Content)

	appErr := h.Notify.CommentPosted(r.Context(), notify_service.CommentPayload{
		CommentID:  req.CommentID,
		ActivityID: activityID,
		AuthorID:   req.AuthorID,
		AuthorRole: req.AuthorRole,
		Content:    req.Content,
	}, req.CounterpartID, title, content)
	if appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("comment broadcasted", struct{}{}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}
