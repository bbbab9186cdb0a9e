package coupon_dto

type ScratchResponse struct {
	Amount int    `json:"amount"`
	Image  string `json:"image"`
}
