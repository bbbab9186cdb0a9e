package hub_handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	"github.com/zx0938013408/teamb-server/internal/websocket"
)

type HubHandler struct {
	Hub *websocket.Hub
}

func NewHubHandler(hub *websocket.Hub) *HubHandler {
	return &HubHandler{
		Hub: hub,
	}
}

func (h *HubHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "teamb-server",
	})
}

func (h *HubHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	stats := h.Hub.GetHubStats()
	resp := handlers.CreateResponse("get websocket stats", stats, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HubHandler) HandleGetRoomStats(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	roomKey := chi.URLParam(r, "roomKey")
	stats := h.Hub.GetRoomStats(roomKey)
	resp := handlers.CreateResponse("get websocket room stats", stats, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}
