package entity

import "time"

type Order struct {
	ID               int64     `gorm:"primaryKey"`
	MerchantTradeNo  string    `gorm:"column:merchant_trade_no;uniqueIndex;not null"`
	MemberID         int       `gorm:"column:members_id;not null;index"`
	TotalAmount      int       `gorm:"column:total_amount;not null"`
	OrderStatusID    int       `gorm:"column:order_status_id;not null"`
	PaymentStatus    string    `gorm:"column:payment_status;not null"`
	ShippingMethodID int       `gorm:"column:shipping_method_id;not null"`
	PaymentMethodID  int       `gorm:"column:payment_method_id;not null"`
	UsedUserCouponID *int64    `gorm:"column:used_user_coupon_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID       int64 `gorm:"primaryKey"`
	OrderID  int64 `gorm:"column:order_id;not null;index"`
	ItemID   int64 `gorm:"column:item_id;not null"`
	Quantity int   `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ShoppingDetail holds the recipient and delivery info of one order.
// City/area/address are set for home delivery, store fields for pickup.
type ShoppingDetail struct {
	ID               int64   `gorm:"primaryKey"`
	OrderID          int64   `gorm:"column:order_id;not null;uniqueIndex"`
	RecipientName    string  `gorm:"column:recipient_name;not null"`
	RecipientPhone   string  `gorm:"column:recipient_phone;not null"`
	ShippingMethodID int     `gorm:"column:shipping_method_id;not null"`
	CityID           *int    `gorm:"column:city_id"`
	AreaID           *int    `gorm:"column:area_id"`
	DetailedAddress  *string `gorm:"column:detailed_address"`
	StoreName        *string `gorm:"column:store_name"`
	StoreAddress     *string `gorm:"column:store_address"`
}

func (ShoppingDetail) TableName() string {
	return "shopping_detail"
}
