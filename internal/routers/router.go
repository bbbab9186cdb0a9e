package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	notify_service "github.com/zx0938013408/teamb-server/internal/use-case/notify-case"
	"github.com/zx0938013408/teamb-server/internal/websocket"
	"github.com/zx0938013408/teamb-server/state"
)

func NewRouter(appState *state.AppState, hub *websocket.Hub, wsHandler *websocket.WebSocketHandler, notify notify_service.NotifyServiceContract) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestId)
	MessageRouter(r, appState)
	CouponRouter(r, appState)
	OrderRouter(r, appState)
	CommentRouter(r, appState, notify)
	HubRouter(r, hub, wsHandler)
	return r
}
