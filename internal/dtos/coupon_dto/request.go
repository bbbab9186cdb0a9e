package coupon_dto

type ScratchRequest struct {
	UserID   int   `json:"userId" validate:"required,gt=0"`
	CouponID int64 `json:"couponId" validate:"required,gt=0"`
}

// UseCouponRequest redeems a user coupon against an existing order.
// CouponID is the user_coupons row id, not the coupons catalog id.
type UseCouponRequest struct {
	UserID   int   `json:"userId" validate:"required,gt=0"`
	CouponID int64 `json:"couponId" validate:"required,gt=0"`
	OrderID  int64 `json:"orderId" validate:"required,gt=0"`
}
