package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	coupon_handler "github.com/zx0938013408/teamb-server/internal/handlers/coupon-handler"
	"github.com/zx0938013408/teamb-server/state"
)

func CouponRouter(r chi.Router, appState *state.AppState) {
	h := coupon_handler.NewCouponHandler(appState)

	r.Route("/api/coupons", func(r chi.Router) {
		r.Get("/", handlers.WrapHandler(h.HandleListCoupons))
		r.Post("/scratch", handlers.WrapHandler(h.HandleScratch))
		r.Get("/{userId}", handlers.WrapHandler(h.HandleListMemberCoupons))
		r.Post("/use-coupon", handlers.WrapHandler(h.HandleUseCoupon))
	})
}
