package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	hub_handler "github.com/zx0938013408/teamb-server/internal/handlers/hub-handler"
	"github.com/zx0938013408/teamb-server/internal/websocket"
)

func HubRouter(r chi.Router, hub *websocket.Hub, wsHandler *websocket.WebSocketHandler) {
	h := hub_handler.NewHubHandler(hub)

	r.Get("/ws", wsHandler.ServeWS)
	r.Get("/health", h.HandleHealth)

	r.Route("/api/ws", func(r chi.Router) {
		r.Get("/stats", handlers.WrapHandler(h.HandleGetStats))
		r.Get("/rooms/{roomKey}/stats", handlers.WrapHandler(h.HandleGetRoomStats))
	})
}
