package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	comment_handler "github.com/zx0938013408/teamb-server/internal/handlers/comment-handler"
	notify_service "github.com/zx0938013408/teamb-server/internal/use-case/notify-case"
	"github.com/zx0938013408/teamb-server/state"
)

func CommentRouter(r chi.Router, appState *state.AppState, notify notify_service.NotifyServiceContract) {
	h := comment_handler.NewCommentHandler(appState, notify)

	r.Post("/api/activities/{activityId}/comments", handlers.WrapHandler(h.HandleCommentPosted))
}
