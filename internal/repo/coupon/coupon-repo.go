package coupon_repo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/entity"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
	"github.com/zx0938013408/teamb-server/state"
	"gorm.io/gorm"
)

type CouponRepo struct {
	AppState *state.AppState
}

func NewCouponRepo(appState *state.AppState) CouponRepoContract {
	return &CouponRepo{
		AppState: appState,
	}
}

func (r *CouponRepo) ListAll(ctx context.Context) ([]entity.Coupon, *app_error.AppError) {
	var coupons []entity.Coupon
	if err := r.AppState.DB.WithContext(ctx).Find(&coupons).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch coupons")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch coupons", "db-error")
	}
	return coupons, nil
}

// Scratch saves a scratch-card win as an unused user coupon after checking
// the coupon actually exists.
func (r *CouponRepo) Scratch(ctx context.Context, memberID int, couponID int64) (*entity.Coupon, *app_error.AppError) {
	var coupon entity.Coupon
	if err := r.AppState.DB.WithContext(ctx).First(&coupon, couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NewAppError(http.StatusNotFound, "coupon not found", "coupon-id")
		}
		log.Error().Err(err).Int64("couponID", couponID).Msg("failed to fetch coupon")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch coupon", "db-error")
	}

	userCoupon := entity.UserCoupon{
		MemberID: memberID,
		CouponID: couponID,
		IsUsed:   false,
	}
	if err := r.AppState.DB.WithContext(ctx).Create(&userCoupon).Error; err != nil {
		log.Error().Err(err).Int("memberID", memberID).Int64("couponID", couponID).Msg("failed to save user coupon")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to save coupon", "db-error")
	}

	return &coupon, nil
}

func (r *CouponRepo) ListForMember(ctx context.Context, memberID int) ([]MemberCoupon, *app_error.AppError) {
	var coupons []MemberCoupon

	err := r.AppState.DB.WithContext(ctx).
		Table("user_coupons uc").
		Select("uc.id AS user_coupon_id, c.amount, c.image, uc.is_used").
		Joins("JOIN coupons c ON uc.coupon_id = c.id").
		Where("uc.member_id = ?", memberID).
		Scan(&coupons).Error
	if err != nil {
		log.Error().Err(err).Int("memberID", memberID).Msg("failed to fetch member coupons")
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to fetch member coupons", "db-error")
	}

	return coupons, nil
}

// Redeem is the one atomic unit of the coupon flow. The filtered read plus
// the affected-row check on the update form a compare-and-swap standing in
// for row locking: under concurrent redemptions of the same user coupon
// exactly one transaction flips is_used.
func (r *CouponRepo) Redeem(ctx context.Context, memberID int, userCouponID, orderID int64) error {
	tx := r.AppState.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin redemption transaction: %w", tx.Error)
	}
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	var userCoupon entity.UserCoupon
	err := tx.Where("member_id = ? AND id = ? AND is_used = ?", memberID, userCouponID, false).
		First(&userCoupon).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return app_error.ErrCouponInvalidOrUsed
		}
		return fmt.Errorf("failed to query user coupon: %w", err)
	}

	res := tx.Model(&entity.UserCoupon{}).
		Where("id = ? AND is_used = ?", userCoupon.ID, false).
		Update("is_used", true)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to mark coupon used: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Another redemption won between the read and the update.
		tx.Rollback()
		return app_error.ErrCouponRedemptionConflict
	}

	res = tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("used_user_coupon_id", userCoupon.ID)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to stamp order with coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return app_error.ErrOrderNotFound
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit redemption: %w", err)
	}

	log.Info().Int("memberID", memberID).Int64("userCouponID", userCouponID).Int64("orderID", orderID).Msg("coupon redeemed")
	return nil
}
