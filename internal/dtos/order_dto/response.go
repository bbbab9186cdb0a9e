package order_dto

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}
