package order_handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/zx0938013408/teamb-server/internal/dtos/order_dto"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/internal/handlers"
	"github.com/zx0938013408/teamb-server/internal/middleware"
	order_repo "github.com/zx0938013408/teamb-server/internal/repo/order"
	"github.com/zx0938013408/teamb-server/state"
)

type OrderHandler struct {
	State    *state.AppState
	Validate *validator.Validate
	Repo     order_repo.OrderRepoContract
}

func NewOrderHandler(appState *state.AppState) *OrderHandler {
	return &OrderHandler{
		State:    appState,
		Validate: validator.New(),
		Repo:     order_repo.NewOrderRepo(appState),
	}
}

func (h *OrderHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req order_dto.CreateOrderRequest
	defer r.Body.Close()

	if err := handlers.DecodeJSON(r.Body, &req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}
	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "missing required order fields", "body")
	}

	items := make([]order_repo.OrderItemInput, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, order_repo.OrderItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	orderID, appErr := h.Repo.Create(r.Context(), order_repo.CreateOrderInput{
		MemberID:         req.MemberID,
		TotalAmount:      req.TotalAmount,
		OrderStatusID:    req.OrderStatusID,
		ShippingMethodID: req.ShippingMethodID,
		PaymentMethodID:  req.PaymentMethodID,
		Items:            items,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		CityID:           req.CityID,
		AreaID:           req.AreaID,
		DetailedAddress:  req.DetailedAddress,
		StoreName:        req.StoreName,
		StoreAddress:     req.StoreAddress,
	})
	if appErr != nil {
		return appErr
	}

	resp := handlers.CreateResponse("order created", order_dto.CreateOrderResponse{OrderID: orderID}, middleware.RequestIDFrom(r.Context()))
	handlers.WriteJSON(w, http.StatusOK, resp)
	return nil
}
