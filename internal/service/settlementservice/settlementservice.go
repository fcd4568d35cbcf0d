package settlementservice

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/service/couponservice"
	"github.com/GlebRadaev/storefront/internal/service/orderservice"
	"github.com/GlebRadaev/storefront/pkg/events"
	"github.com/GlebRadaev/storefront/pkg/metrics"
)

type OrderStore interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (*domain.Order, error)
	SetStatus(ctx context.Context, id int, to domain.OrderStatus) (*domain.Order, error)
}

type CouponLedger interface {
	Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*domain.AppliedCoupon, error)
	Consume(ctx context.Context, code string, orderID int, subtotal decimal.Decimal) (*domain.AppliedCoupon, error)
}

type LoyaltyWallet interface {
	Enabled() bool
	CoinsEarned(total decimal.Decimal) int64
	Redeem(ctx context.Context, userID int, coins int64, reference string) error
	ReverseRedemption(ctx context.Context, userID int, reference string) (int64, error)
	Credit(ctx context.Context, userID int, coins int64, orderID int) error
	ReverseEarned(ctx context.Context, userID, orderID int) (int64, error)
}

type CommissionAccrual interface {
	Record(ctx context.Context, order *domain.Order) error
	Reverse(ctx context.Context, orderID int) error
}

type WalletCredit interface {
	Credit(ctx context.Context, userID int, amount decimal.Decimal, referenceType, referenceID string) error
}

type OutcomeRepo interface {
	Save(ctx context.Context, outcome *domain.SettlementOutcome) error
	ListFailed(ctx context.Context, limit, maxAttempts int) ([]domain.SettlementOutcome, error)
}

type Locker interface {
	Lock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

type Deps struct {
	Orders      OrderStore
	Coupons     CouponLedger
	Coins       LoyaltyWallet
	Commissions CommissionAccrual
	Wallet      WalletCredit
	Outcomes    OutcomeRepo
	// Locker defaults to an in-process lock.
	Locker Locker
	// Publisher defaults to dropping events.
	Publisher EventPublisher
	Metrics   *metrics.SettlementMetrics
}

type Options struct {
	StepTimeout     time.Duration
	MaxAttempts     int
	ReverseOnCancel bool
}

const (
	defaultStepTimeout = 5 * time.Second
	defaultMaxAttempts = 5
)

type Service struct {
	orders      OrderStore
	coupons     CouponLedger
	coins       LoyaltyWallet
	commissions CommissionAccrual
	wallet      WalletCredit
	outcomes    OutcomeRepo
	locker      Locker
	publisher   EventPublisher
	metrics     *metrics.SettlementMetrics
	opts        Options
}

func New(deps Deps, opts Options) *Service {
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = defaultStepTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if deps.Locker == nil {
		deps.Locker = NewLocalLocker()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NoopPublisher{}
	}
	return &Service{
		orders:      deps.Orders,
		coupons:     deps.Coupons,
		coins:       deps.Coins,
		commissions: deps.Commissions,
		wallet:      deps.Wallet,
		outcomes:    deps.Outcomes,
		locker:      deps.Locker,
		publisher:   deps.Publisher,
		metrics:     deps.Metrics,
		opts:        opts,
	}
}

var (
	ErrCheckoutInProgress = errors.New("checkout with this idempotency key is in progress")
	ErrOrderNotFound      = orderservice.ErrOrderNotFound
	ErrInvalidTransition  = orderservice.ErrInvalidTransition
)

const RefundFailedWarning = "order cancelled but refund failed, contact support"

type PlaceResult struct {
	Order *domain.Order
	// Replayed is set when the idempotency key matched an existing order.
	Replayed bool
	Outcomes []domain.SettlementOutcome
}

type CancelResult struct {
	Order    *domain.Order
	Refunded bool
	Warning  string
	Outcomes []domain.SettlementOutcome
}

// PlaceOrder validates the checkout, debits the redeemed coins, commits the
// order and then applies the remaining settlement steps. Once the order is
// committed, step failures are recorded but never returned.
func (s *Service) PlaceOrder(ctx context.Context, userID int, req CheckoutRequest) (*PlaceResult, error) {
	c, err := req.validate()
	if err != nil {
		return nil, err
	}

	if res, err := s.replay(ctx, userID, c.key); res != nil || err != nil {
		return res, err
	}

	lockKey := c.key.String()
	locked, err := s.locker.Lock(ctx, lockKey)
	if err != nil {
		zap.L().Error("can't acquire checkout lock", zap.String("idempotency_key", lockKey), zap.Error(err))
		return nil, fmt.Errorf("acquire checkout lock: %w", err)
	}
	if !locked {
		return nil, ErrCheckoutInProgress
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), lockKey); err != nil {
			zap.L().Warn("can't release checkout lock", zap.String("idempotency_key", lockKey), zap.Error(err))
		}
	}()

	// the key may have been committed while we waited for the lock
	if res, err := s.replay(ctx, userID, c.key); res != nil || err != nil {
		return res, err
	}

	couponDiscount, bonusCoins := decimal.Zero, int64(0)
	if c.CouponCode != "" {
		applied, err := s.coupons.Preview(ctx, c.CouponCode, c.subtotal)
		if err != nil {
			if isCouponRejection(err) {
				return nil, fieldError("coupon_code", err.Error())
			}
			return nil, err
		}
		couponDiscount, bonusCoins = applied.DiscountAmount, applied.BonusCoins
	}
	totals := ComputeTotals(c.subtotal, c.CoinsToRedeem, couponDiscount)

	if totals.CoinsUsed > 0 {
		if err := s.coins.Redeem(ctx, userID, totals.CoinsUsed, lockKey); err != nil {
			zap.L().Info("coin redemption rejected", zap.Int("user_id", userID), zap.Error(err))
			return nil, &RedemptionError{Err: err}
		}
	}

	order := &domain.Order{
		UserID:           userID,
		IdempotencyKey:   c.key,
		Subtotal:         totals.Subtotal,
		CouponCode:       c.CouponCode,
		CouponDiscount:   totals.CouponDiscount,
		BonusCoins:       bonusCoins,
		CoinsRedeemed:    totals.CoinsUsed,
		CoinsDiscount:    totals.CoinsDiscount,
		TotalAmount:      totals.Total,
		PaymentMethod:    c.paymentMethod,
		AffiliateClickID: c.AffiliateClickID,
		Shipping: domain.ShippingInfo{
			Name:       c.Shipping.Name,
			Phone:      c.Shipping.Phone,
			Address:    c.Shipping.Address,
			City:       c.Shipping.City,
			PostalCode: c.Shipping.PostalCode,
		},
		Items: c.items,
	}
	created, err := s.orders.Create(ctx, order)
	if errors.Is(err, orderservice.ErrOrderAlreadyExists) {
		s.compensateRedemption(ctx, userID, totals.CoinsUsed, lockKey)
		return s.replayed(userID, created)
	}
	if err != nil {
		s.compensateRedemption(ctx, userID, totals.CoinsUsed, lockKey)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.metrics.OrderPlaced()
	zap.L().Info("order placed",
		zap.Int("order_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.String("total", created.TotalAmount.StringFixed(2)))

	outcomes := s.settle(ctx, created, s.placementSteps(created))
	return &PlaceResult{Order: created, Outcomes: outcomes}, nil
}

func (s *Service) replay(ctx context.Context, userID int, key uuid.UUID) (*PlaceResult, error) {
	existing, err := s.orders.GetByIdempotencyKey(ctx, key)
	if err != nil {
		zap.L().Error("can't look up idempotency key", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return s.replayed(userID, existing)
}

func (s *Service) replayed(userID int, existing *domain.Order) (*PlaceResult, error) {
	if existing.UserID != userID {
		return nil, fieldError("idempotency_key", "is already used")
	}
	zap.L().Info("checkout replayed", zap.Int("order_id", existing.ID))
	return &PlaceResult{Order: existing, Replayed: true}, nil
}

// compensateRedemption returns coins debited for a checkout whose order was
// not created.
func (s *Service) compensateRedemption(ctx context.Context, userID int, coins int64, reference string) {
	if coins <= 0 {
		return
	}
	restored, err := s.coins.ReverseRedemption(context.WithoutCancel(ctx), userID, reference)
	if err != nil {
		zap.L().Error("can't reverse coin redemption",
			zap.Int("user_id", userID),
			zap.String("reference", reference),
			zap.Error(err))
		return
	}
	zap.L().Info("coin redemption reversed", zap.Int("user_id", userID), zap.Int64("coins", restored))
}

func isCouponRejection(err error) bool {
	return errors.Is(err, couponservice.ErrCouponNotFound) ||
		errors.Is(err, couponservice.ErrCouponInactive) ||
		errors.Is(err, couponservice.ErrCouponExpired) ||
		errors.Is(err, couponservice.ErrCouponMinOrder) ||
		errors.Is(err, couponservice.ErrCouponAlreadyConsumed)
}

// CancelOrder cancels a pending or processing order of the user and refunds
// prepaid orders to the wallet. A failed refund leaves the order cancelled
// and is reported as a warning.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID int) (*CancelResult, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if !orderservice.CanTransition(order.Status, domain.OrderStatusCancelled) {
		return nil, fmt.Errorf("%w: %s order can't be cancelled", ErrInvalidTransition, order.Status)
	}

	updated, err := s.orders.SetStatus(ctx, orderID, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	order.Status = updated.Status
	order.UpdatedAt = updated.UpdatedAt
	s.metrics.OrderCancelled()
	zap.L().Info("order cancelled", zap.Int("order_id", orderID))

	res := &CancelResult{Order: order}
	res.Outcomes = s.settle(ctx, order, s.cancellationSteps(order))
	for _, o := range res.Outcomes {
		if o.Step != StepRefund {
			continue
		}
		res.Refunded = o.Status == domain.OutcomeSucceeded
		if !res.Refunded {
			res.Warning = RefundFailedWarning
			s.metrics.RefundFailed()
		}
	}
	return res, nil
}

// FailedOutcomes lists failed steps that have attempts left.
func (s *Service) FailedOutcomes(ctx context.Context, limit int) ([]domain.SettlementOutcome, error) {
	return s.outcomes.ListFailed(ctx, limit, s.opts.MaxAttempts)
}

// Retry runs a failed step again for its order. Placement steps of an order
// cancelled since are recorded as skipped instead.
func (s *Service) Retry(ctx context.Context, outcome domain.SettlementOutcome) (domain.SettlementOutcome, error) {
	st, err := s.step(outcome.Step)
	if err != nil {
		return outcome, err
	}
	order, err := s.orders.GetByID(ctx, outcome.OrderID)
	if err != nil {
		return outcome, fmt.Errorf("load order %d: %w", outcome.OrderID, err)
	}
	if order.Status == domain.OrderStatusCancelled && placementStep(st.Name) {
		return s.skipStep(context.WithoutCancel(ctx), order, st.Name), nil
	}
	return s.runStep(context.WithoutCancel(ctx), order, st), nil
}

func (s *Service) skipStep(ctx context.Context, order *domain.Order, name string) domain.SettlementOutcome {
	outcome := domain.SettlementOutcome{
		OrderID: order.ID,
		Step:    name,
		Status:  domain.OutcomeSkipped,
		Reason:  "order cancelled",
	}
	zap.L().Info("settlement step skipped", zap.Int("order_id", order.ID), zap.String("step", name))

	saveCtx, cancel := context.WithTimeout(ctx, s.opts.StepTimeout)
	defer cancel()
	if err := s.outcomes.Save(saveCtx, &outcome); err != nil {
		zap.L().Error("can't save settlement outcome",
			zap.Int("order_id", order.ID),
			zap.String("step", name),
			zap.Error(err))
	}
	return outcome
}

// RetryFailed retries up to limit failed steps one by one and reports how many
// succeeded.
func (s *Service) RetryFailed(ctx context.Context, limit int) (int, error) {
	failed, err := s.FailedOutcomes(ctx, limit)
	if err != nil {
		return 0, err
	}
	succeeded := 0
	for _, outcome := range failed {
		if err := ctx.Err(); err != nil {
			return succeeded, err
		}
		res, err := s.Retry(ctx, outcome)
		if err != nil {
			zap.L().Warn("can't retry settlement step", zap.String("step", outcome.Step), zap.Error(err))
			continue
		}
		if res.Status == domain.OutcomeSucceeded {
			succeeded++
		}
	}
	return succeeded, nil
}
