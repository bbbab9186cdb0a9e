package coupon_repo

import (
	"context"

	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

type MemberCoupon struct {
	UserCouponID int64  `json:"user_coupon_id"`
	Amount       int    `json:"amount"`
	Image        string `json:"image"`
	IsUsed       bool   `json:"is_used"`
}

type CouponRepoContract interface {
	ListAll(ctx context.Context) ([]entity.Coupon, *app_error.AppError)
	Scratch(ctx context.Context, memberID int, couponID int64) (*entity.Coupon, *app_error.AppError)
	ListForMember(ctx context.Context, memberID int) ([]MemberCoupon, *app_error.AppError)

	// Redeem atomically marks the user coupon used and stamps the order
	// with it. On failure it returns one of the sentinels in app_error
	// (ErrCouponInvalidOrUsed, ErrCouponRedemptionConflict,
	// ErrOrderNotFound) with every write rolled back.
	Redeem(ctx context.Context, memberID int, userCouponID, orderID int64) error
}
