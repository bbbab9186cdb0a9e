package order_repo

import (
	"context"

	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

type OrderItemInput struct {
	ItemID   int64 `json:"item_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	MemberID         int
	TotalAmount      int
	OrderStatusID    int
	ShippingMethodID int
	PaymentMethodID  int
	Items            []OrderItemInput
	RecipientName    string
	RecipientPhone   string
	CityID           *int
	AreaID           *int
	DetailedAddress  *string
	StoreName        *string
	StoreAddress     *string
}

type OrderRepoContract interface {
	// Create inserts the order, its items and the shopping detail in one
	// atomic unit and returns the new order id.
	Create(ctx context.Context, input CreateOrderInput) (int64, *app_error.AppError)
}
