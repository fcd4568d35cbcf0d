package couponservice

//go:generate mockgen -source=couponservice.go -destination=mock_couponservice.go -package=couponservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	MarkConsumed(ctx context.Context, couponID, orderID int, discount decimal.Decimal) (bool, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

var (
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponInactive        = errors.New("coupon is not active")
	ErrCouponExpired         = errors.New("coupon is outside its validity window")
	ErrCouponMinOrder        = errors.New("order value is below the coupon minimum")
	ErrCouponAlreadyConsumed = errors.New("coupon already consumed")
)

var hundred = decimal.NewFromInt(100)

// Discount returns what the coupon takes off the subtotal. Percentage
// discounts respect the coupon cap, and no discount exceeds the subtotal.
func Discount(c *domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case domain.DiscountPercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(hundred)
		if c.MaxDiscount.IsPositive() && discount.GreaterThan(c.MaxDiscount) {
			discount = c.MaxDiscount
		}
	case domain.DiscountFlat:
		discount = c.DiscountValue
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount.Round(2)
}

func (s *Service) check(c *domain.Coupon, subtotal decimal.Decimal, orderID int) error {
	now := s.now()
	switch {
	case !c.Active:
		return ErrCouponInactive
	case now.Before(c.ValidFrom), c.ValidTo != nil && now.After(*c.ValidTo):
		return ErrCouponExpired
	case subtotal.LessThan(c.MinOrderValue):
		return ErrCouponMinOrder
	case c.OrderID != 0 && c.OrderID != orderID:
		return ErrCouponAlreadyConsumed
	}
	return nil
}

func (s *Service) find(ctx context.Context, code string) (*domain.Coupon, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}
	return c, nil
}

func applied(c *domain.Coupon, subtotal decimal.Decimal, orderID int) *domain.AppliedCoupon {
	return &domain.AppliedCoupon{
		Code:           c.Code,
		DiscountAmount: Discount(c, subtotal),
		BonusCoins:     c.BonusCoins,
		OrderID:        orderID,
	}
}

// Preview validates the coupon against the subtotal without consuming it.
func (s *Service) Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*domain.AppliedCoupon, error) {
	c, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.check(c, subtotal, 0); err != nil {
		return nil, err
	}
	return applied(c, subtotal, 0), nil
}

// Consume binds the coupon to the order. Consuming a coupon again for the
// order that already holds it succeeds without changes.
func (s *Service) Consume(ctx context.Context, code string, orderID int, subtotal decimal.Decimal) (*domain.AppliedCoupon, error) {
	c, err := s.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if c.OrderID == orderID {
		return applied(c, subtotal, orderID), nil
	}
	if err := s.check(c, subtotal, orderID); err != nil {
		zap.L().Warn("coupon rejected", zap.String("code", code), zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}

	result := applied(c, subtotal, orderID)
	consumed, err := s.repo.MarkConsumed(ctx, c.ID, orderID, result.DiscountAmount)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, ErrCouponAlreadyConsumed
	}
	zap.L().Info("coupon consumed", zap.String("code", code), zap.Int("order_id", orderID))
	return result, nil
}
