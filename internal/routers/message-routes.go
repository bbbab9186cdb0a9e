package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	message_handler "github.com/zx0938013408/teamb-server/internal/handlers/message-handler"
	"github.com/zx0938013408/teamb-server/state"
)

func MessageRouter(r chi.Router, appState *state.AppState) {
	h := message_handler.NewMessageHandler(appState)

	r.Route("/api/messages", func(r chi.Router) {
		r.Get("/{memberId}", handlers.WrapHandler(h.HandleListMessages))
		r.Put("/read/{id}", handlers.WrapHandler(h.HandleMarkRead))
		r.Delete("/{id}", handlers.WrapHandler(h.HandleDeleteMessage))
	})
}
