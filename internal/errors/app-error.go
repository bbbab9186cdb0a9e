package app_error

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Sentinel failures of the coupon redemption transaction. The repo maps
// these onto rollbacks; handlers map them onto structured responses.
var (
	ErrCouponInvalidOrUsed      = errors.New("coupon is invalid or already used")
	ErrCouponRedemptionConflict = errors.New("coupon was redeemed by a concurrent request")
	ErrOrderNotFound            = errors.New("order not found")
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e AppError) Error() string {
	return e.Message
}

func (e AppError) JSON(w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(e)
}

func NewAppError(code int, msg, field string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Field:   field,
	}
}
