package dto

import "time"

type WalletBalanceResponseDTO struct {
	Balance string `json:"balance" example:"750.00"`
}

type WalletTransactionResponseDTO struct {
	Type          string    `json:"type" example:"credit"`
	Amount        string    `json:"amount" example:"750.00"`
	ReferenceType string    `json:"reference_type" example:"order_cancellation"`
	ReferenceID   string    `json:"reference_id" example:"10"`
	CreatedAt     time.Time `json:"created_at" example:"2024-12-09T16:09:57+05:30"`
}

type CoinWalletResponseDTO struct {
	AvailableCoins int64  `json:"available_coins" example:"1200"`
	LifetimeEarned int64  `json:"lifetime_earned" example:"4000"`
	Value          string `json:"value" example:"120.00"`
}

type CoinTransactionResponseDTO struct {
	Type             string    `json:"type" example:"earned"`
	Amount           int64     `json:"amount" example:"93"`
	Status           string    `json:"status" example:"pending"`
	ReferenceOrderID int       `json:"reference_order_id,omitempty" example:"10"`
	CreatedAt        time.Time `json:"created_at" example:"2024-12-09T16:09:57+05:30"`
}
