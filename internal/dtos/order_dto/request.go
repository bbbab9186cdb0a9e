package order_dto

type OrderItemRequest struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	MemberID         int                `json:"member_id" validate:"required,gt=0"`
	TotalAmount      int                `json:"total_amount" validate:"required,gt=0"`
	OrderStatusID    int                `json:"order_status_id" validate:"required"`
	ShippingMethodID int                `json:"shipping_method_id" validate:"required"`
	PaymentMethodID  int                `json:"payment_method_id" validate:"required"`
	OrderItems       []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
	RecipientName    string             `json:"recipient_name" validate:"required"`
	RecipientPhone   string             `json:"recipient_phone" validate:"required"`
	CityID           *int               `json:"city_id"`
	AreaID           *int               `json:"area_id"`
	DetailedAddress  *string            `json:"detailed_address"`
	StoreName        *string            `json:"store_name"`
	StoreAddress     *string            `json:"store_address"`
}
