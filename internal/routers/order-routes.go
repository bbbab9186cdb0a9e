package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	order_handler "github.com/zx0938013408/teamb-server/internal/handlers/order-handler"
	"github.com/zx0938013408/teamb-server/state"
)

func OrderRouter(r chi.Router, appState *state.AppState) {
	h := order_handler.NewOrderHandler(appState)

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", handlers.WrapHandler(h.HandleCreateOrder))
	})
}
