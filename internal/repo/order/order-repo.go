package order_repo

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/state"
)

type OrderRepo struct {
	AppState *state.AppState
}

func NewOrderRepo(appState *state.AppState) OrderRepoContract {
	return &OrderRepo{
		AppState: appState,
	}
}

// generateTradeNo builds the merchant trade number: od + timestamp + a
// random suffix, e.g. od20250115093042817.
func generateTradeNo() string {
	return fmt.Sprintf("od%s%03d", time.Now().Format("20060102150405"), rand.Intn(1000))
}

func (r *OrderRepo) Create(ctx context.Context, input CreateOrderInput) (int64, *app_error.AppError) {
	tx := r.AppState.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("failed to begin order transaction")
		return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to create order", "db-error")
	}
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	order := entity.Order{
		MerchantTradeNo:  generateTradeNo(),
		MemberID:         input.MemberID,
		TotalAmount:      input.TotalAmount,
		OrderStatusID:    input.OrderStatusID,
		PaymentStatus:    "未付款",
		ShippingMethodID: input.ShippingMethodID,
		PaymentMethodID:  input.PaymentMethodID,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Error().Err(err).Int("memberID", input.MemberID).Msg("failed to insert order")
		return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to insert order", "db-error")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			OrderID:  order.ID,
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			tx.Rollback()
			log.Error().Err(err).Int64("orderID", order.ID).Msg("failed to insert order items")
			return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to insert order items", "db-error")
		}
	}

	detail := entity.ShoppingDetail{
		OrderID:          order.ID,
		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		ShippingMethodID: input.ShippingMethodID,
		CityID:           input.CityID,
		AreaID:           input.AreaID,
		DetailedAddress:  input.DetailedAddress,
		StoreName:        input.StoreName,
		StoreAddress:     input.StoreAddress,
	}
	if err := tx.Create(&detail).Error; err != nil {
		tx.Rollback()
		log.Error().Err(err).Int64("orderID", order.ID).Msg("failed to insert shopping detail")
		return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to insert shopping detail", "db-error")
	}

	if err := tx.Commit().Error; err != nil {
		log.Error().Err(err).Int64("orderID", order.ID).Msg("failed to commit order")
		return 0, app_error.NewAppError(http.StatusInternalServerError, "failed to commit order", "db-error")
	}

	log.Info().Int64("orderID", order.ID).Str("tradeNo", order.MerchantTradeNo).Msg("order created")
	return order.ID, nil
}
