package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

const (
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentOnline         = "Online Payment"
)

type ShippingInfo struct {
	Name       string `db:"shipping_name"`
	Phone      string `db:"shipping_phone"`
	Address    string `db:"shipping_address"`
	City       string `db:"shipping_city"`
	PostalCode string `db:"shipping_postal_code"`
}

type Order struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	OrderNumber      string          `db:"order_number"`
	IdempotencyKey   uuid.UUID       `db:"idempotency_key"`
	Status           OrderStatus     `db:"status"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	CouponCode       string          `db:"coupon_code"`
	CouponDiscount   decimal.Decimal `db:"coupon_discount"`
	BonusCoins       int64           `db:"bonus_coins"`
	CoinsRedeemed    int64           `db:"coins_redeemed"`
	CoinsDiscount    decimal.Decimal `db:"coins_discount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	PaymentMethod    string          `db:"payment_method"`
	AffiliateClickID int64           `db:"affiliate_click_id"`
	Shipping         ShippingInfo
	Items            []OrderItem
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type OrderItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	LineTotal decimal.Decimal `db:"line_total"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

type Coupon struct {
	ID            int             `db:"id"`
	Code          string          `db:"code"`
	DiscountType  DiscountType    `db:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value"`
	// MaxDiscount of zero means the discount is not capped.
	MaxDiscount   decimal.Decimal `db:"max_discount"`
	MinOrderValue decimal.Decimal `db:"min_order_value"`
	BonusCoins    int64           `db:"bonus_coins"`
	ValidFrom     time.Time       `db:"valid_from"`
	ValidTo       *time.Time      `db:"valid_to"`
	Active        bool            `db:"active"`
	OrderID       int             `db:"order_id"`
}

type AppliedCoupon struct {
	Code           string
	DiscountAmount decimal.Decimal
	BonusCoins     int64
	OrderID        int
}

type CoinTransactionType string

const (
	CoinEarned   CoinTransactionType = "earned"
	CoinRedeemed CoinTransactionType = "redeemed"
	CoinReversed CoinTransactionType = "reversed"
)

type CoinTransactionStatus string

const (
	CoinStatusPending   CoinTransactionStatus = "pending"
	CoinStatusConfirmed CoinTransactionStatus = "confirmed"
	CoinStatusReversed  CoinTransactionStatus = "reversed"
)

type LoyaltyWallet struct {
	UserID         int   `db:"user_id"`
	AvailableCoins int64 `db:"available_coins"`
	LifetimeEarned int64 `db:"lifetime_earned"`
}

type CoinTransaction struct {
	ID               int                   `db:"id"`
	UserID           int                   `db:"user_id"`
	Type             CoinTransactionType   `db:"type"`
	Amount           int64                 `db:"amount"`
	Status           CoinTransactionStatus `db:"status"`
	ReferenceOrderID int                   `db:"reference_order_id"`
	Reference        string                `db:"reference"`
	CreatedAt        time.Time             `db:"created_at"`
}

type CommissionRuleType string

const (
	CommissionPercentage CommissionRuleType = "percentage"
	CommissionFlat       CommissionRuleType = "flat"
)

type AffiliateClick struct {
	ID          int64              `db:"id"`
	AffiliateID int                `db:"affiliate_id"`
	RuleType    CommissionRuleType `db:"rule_type"`
	RuleValue   decimal.Decimal    `db:"rule_value"`
	CreatedAt   time.Time          `db:"created_at"`
}

type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "pending"
	CommissionConfirmed CommissionStatus = "confirmed"
	CommissionReversed  CommissionStatus = "reversed"
)

type AffiliateCommission struct {
	ID          int              `db:"id"`
	AffiliateID int              `db:"affiliate_id"`
	OrderID     int              `db:"order_id"`
	ClickID     int64            `db:"click_id"`
	Amount      decimal.Decimal  `db:"amount"`
	Status      CommissionStatus `db:"status"`
	CreatedAt   time.Time        `db:"created_at"`
}

type WalletBalance struct {
	UserID  int             `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
}

type WalletTransactionType string

const (
	WalletCredit WalletTransactionType = "credit"
	WalletDebit  WalletTransactionType = "debit"
)

type WalletTransaction struct {
	ID            int                   `db:"id"`
	UserID        int                   `db:"user_id"`
	Type          WalletTransactionType `db:"type"`
	Amount        decimal.Decimal       `db:"amount"`
	ReferenceType string                `db:"reference_type"`
	ReferenceID   string                `db:"reference_id"`
	CreatedAt     time.Time             `db:"created_at"`
}

type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
	// OutcomeSkipped marks a step that no longer applies to its order.
	OutcomeSkipped   OutcomeStatus = "skipped"
)

type SettlementOutcome struct {
	ID        uuid.UUID     `db:"id"`
	OrderID   int           `db:"order_id"`
	Step      string        `db:"step"`
	Status    OutcomeStatus `db:"status"`
	Reason    string        `db:"reason"`
	Attempts  int           `db:"attempts"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}
