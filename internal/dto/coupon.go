package dto

import "github.com/shopspring/decimal"

type CouponPreviewRequestDTO struct {
	Code     string          `json:"code" validate:"required,max=64" example:"WELCOME10"`
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"1000.00"`
}

type CouponPreviewResponseDTO struct {
	Code           string `json:"code" example:"WELCOME10"`
	DiscountAmount string `json:"discount_amount" example:"100.00"`
	BonusCoins     int64  `json:"bonus_coins" example:"50"`
}
