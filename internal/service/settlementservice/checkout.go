package settlementservice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/pkg/validate"
)

type CheckoutItem struct {
	ProductID string          `json:"product_id" validate:"required,max=64"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Shipping struct {
	Name       string `json:"name" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"phone"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"max=255"`
	PostalCode string `json:"postal_code" validate:"omitempty,postal"`
}

// CheckoutRequest is a cart submitted for settlement. The json names are the
// keys reported by ValidationError.
type CheckoutRequest struct {
	Items            []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	Shipping         Shipping       `json:"shipping"`
	PaymentMethod    string         `json:"payment_method" validate:"required"`
	CouponCode       string         `json:"coupon_code" validate:"max=64"`
	CoinsToRedeem    int64          `json:"coins_to_redeem" validate:"gte=0"`
	IdempotencyKey   string         `json:"idempotency_key" validate:"required,uuid"`
	AffiliateClickID int64          `json:"affiliate_click_id" validate:"gte=0"`
}

// ValidationError lists rejected checkout fields. Nothing is written when it
// is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// RedemptionError means the coin debit failed and no order was created.
type RedemptionError struct {
	Err error
}

func (e *RedemptionError) Error() string {
	return fmt.Sprintf("coin redemption failed: %v", e.Err)
}

func (e *RedemptionError) Unwrap() error {
	return e.Err
}

var paymentMethods = map[string]string{
	"cod":    domain.PaymentCashOnDelivery,
	"online": domain.PaymentOnline,

	domain.PaymentCashOnDelivery: domain.PaymentCashOnDelivery,
	domain.PaymentOnline:         domain.PaymentOnline,
}

// PaymentMethod maps the short or display name of a payment method to its
// stored form.
func PaymentMethod(s string) (string, bool) {
	m, ok := paymentMethods[strings.TrimSpace(s)]
	return m, ok
}

// checkout is a CheckoutRequest that passed validation.
type checkout struct {
	CheckoutRequest
	key           uuid.UUID
	paymentMethod string
	items         []domain.OrderItem
	subtotal      decimal.Decimal
}

func (r CheckoutRequest) normalize() CheckoutRequest {
	r.Shipping.Name = strings.TrimSpace(r.Shipping.Name)
	r.Shipping.Phone = strings.TrimSpace(r.Shipping.Phone)
	r.Shipping.Address = strings.TrimSpace(r.Shipping.Address)
	r.Shipping.City = strings.TrimSpace(r.Shipping.City)
	r.Shipping.PostalCode = strings.TrimSpace(r.Shipping.PostalCode)
	r.CouponCode = strings.TrimSpace(r.CouponCode)
	r.IdempotencyKey = strings.TrimSpace(r.IdempotencyKey)
	return r
}

func (r CheckoutRequest) validate() (*checkout, error) {
	r = r.normalize()
	fields := validate.Struct(r)
	if fields == nil {
		fields = map[string]string{}
	}

	for i, item := range r.Items {
		if item.UnitPrice.IsNegative() {
			fields[fmt.Sprintf("items[%d].unit_price", i)] = "must be at least 0"
		}
	}
	method, ok := PaymentMethod(r.PaymentMethod)
	if !ok && r.PaymentMethod != "" {
		fields["payment_method"] = "must be one of: cod, online"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	key, err := uuid.Parse(r.IdempotencyKey)
	if err != nil {
		return nil, fieldError("idempotency_key", "must be a valid UUID")
	}

	c := &checkout{
		CheckoutRequest: r,
		key:             key,
		paymentMethod:   method,
		items:           make([]domain.OrderItem, 0, len(r.Items)),
		subtotal:        decimal.Zero,
	}
	for _, item := range r.Items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		c.items = append(c.items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Round(2),
			LineTotal: line,
		})
		c.subtotal = c.subtotal.Add(line)
	}
	return c, nil
}

// Totals is the price breakdown of a checkout.
type Totals struct {
	Subtotal       decimal.Decimal
	CouponDiscount decimal.Decimal
	CoinsDiscount  decimal.Decimal
	// CoinsUsed is the part of the requested coins the discount consumes.
	CoinsUsed int64
	Total     decimal.Decimal
}

// ComputeTotals caps the coin discount at the subtotal and floors the total
// at zero. Coins beyond what the capped discount needs are not spent.
func ComputeTotals(subtotal decimal.Decimal, coins int64, couponDiscount decimal.Decimal) Totals {
	t := Totals{
		Subtotal:       subtotal.Round(2),
		CouponDiscount: couponDiscount.Round(2),
		CoinsDiscount:  decimal.Zero,
	}
	if coins > 0 {
		t.CoinsDiscount = decimal.Min(loyaltyservice.CoinsToMoney(coins), t.Subtotal).Round(2)
		t.CoinsUsed = coins
		if t.CoinsDiscount.LessThan(loyaltyservice.CoinsToMoney(coins)) {
			t.CoinsUsed = t.CoinsDiscount.Div(loyaltyservice.CoinValue).Ceil().IntPart()
		}
	}
	t.Total = decimal.Max(decimal.Zero, t.Subtotal.Sub(t.CoinsDiscount).Sub(t.CouponDiscount)).Round(2)
	return t
}
