package entity

type Coupon struct {
	ID     int64  `gorm:"primaryKey"`
	Amount int    `gorm:"not null"`
	Image  string `gorm:""`
}

func (Coupon) TableName() string {
	return "coupons"
}

// UserCoupon transitions is_used false->true at most once; the redemption
// transaction enforces that with an affected-row check.
type UserCoupon struct {
	ID       int64 `gorm:"primaryKey"`
	MemberID int   `gorm:"column:member_id;not null;index"`
	CouponID int64 `gorm:"column:coupon_id;not null"`
	IsUsed   bool  `gorm:"column:is_used;not null;default:false"`
}

func (UserCoupon) TableName() string {
	return "user_coupons"
}
