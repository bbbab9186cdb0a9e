package coupon_handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/zx0938013408/teamb-server/internal/dtos/coupon_dto"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	coupon_repo "github.com/zx0938013408/teamb-server/internal/repo/coupon"
	"github.com/zx0938013408/teamb-server/state"
)

type CouponHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Repo     coupon_repo.CouponRepoContract
}

func NewCouponHandler(appState *state.AppState) *CouponHandler {
	return &CouponHandler{
		State:    appState,
		Validate: validator.New(),
		Repo:     coupon_repo.NewCouponRepo(appState),
	}
}

func (h *CouponHandler) HandleListCoupons(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	coupons, appErr := h.Repo.ListAll(r.Context())
	if appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("coupons fetched", coupons, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *CouponHandler) HandleScratch(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req coupon_dto.ScratchRequest
	defer r.Body.Close()

	if err := handlers.DecodeJSON(r.Body, &req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "userId and couponId are required", "body")
	}

	coupon, appErr := h.Repo.Scratch(r.Context(), req.UserID, req.CouponID)
	if appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("coupon saved", coupon_dto.ScratchResponse{
		Amount: coupon.Amount,
		Image:  coupon.Image,
	}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *CouponHandler) HandleListMemberCoupons(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	memberID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil || memberID <= 0 {
		return app_error.NewAppError(http.StatusBadRequest, "invalid member id", "member-id")
	}

	coupons, appErr := h.Repo.ListForMember(r.Context(), memberID)
	if appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("member coupons fetched", coupons, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// HandleUseCoupon runs the atomic redemption. Every failure leaves the
// database untouched; the response reason distinguishes an invalid or
// spent coupon, a lost race, and a missing order.
func (h *CouponHandler) HandleUseCoupon(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req coupon_dto.UseCouponRequest
	defer r.Body.Close()

	if err := handlers.DecodeJSON(r.Body, &req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "userId, couponId and orderId are required", "body")
	}

	if err := h.Repo.Redeem(r.Context(), req.UserID, req.CouponID, req.OrderID); err != nil {
		switch {
		case errors.Is(err, app_error.ErrCouponInvalidOrUsed):
			return app_error.NewAppError(http.StatusBadRequest, "coupon is invalid or already used", "coupon")
		case errors.Is(err, app_error.ErrCouponRedemptionConflict):
			return app_error.NewAppError(http.StatusConflict, "coupon was redeemed by another request", "coupon")
		case errors.Is(err, app_error.ErrOrderNotFound):
			return app_error.NewAppError(http.StatusBadRequest, "order not found", "order")
		default:
			return app_error.NewAppError(http.StatusInternalServerError, "failed to redeem coupon", "db-error")
		}
	}

	resp := handlers.CreateResponse("coupon redeemed and applied to order", struct{}{}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}
