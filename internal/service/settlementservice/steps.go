package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/pkg/events"
)

const (
	StepCoupon             = "coupon"
	StepCommission         = "commission"
	StepCoins              = "coins"
	StepOrderPlaced        = "order_placed_event"
	StepRefund             = "refund"
	StepCoinsReversal      = "coins_reversal"
	StepCommissionReversal = "commission_reversal"
	StepOrderCancelled     = "order_cancelled_event"
)

const refundReference = "order_cancellation"

var ErrUnknownStep = errors.New("unknown settlement step")

// placementStep reports whether the step belongs to order placement. Those
// steps must not run once the order is cancelled.
func placementStep(name string) bool {
	switch name {
	case StepCoupon, StepCommission, StepCoins, StepOrderPlaced:
		return true
	}
	return false
}

// SettlementStep is one side effect applied to a committed order. Applying a
// step again for the same order must not repeat its effect.
type SettlementStep struct {
	Name  string
	Apply func(ctx context.Context, order *domain.Order) error
}

func (s *Service) step(name string) (SettlementStep, error) {
	var apply func(ctx context.Context, order *domain.Order) error
	switch name {
	case StepCoupon:
		apply = s.consumeCoupon
	case StepCommission:
		apply = s.recordCommission
	case StepCoins:
		apply = s.creditCoins
	case StepOrderPlaced:
		apply = s.publish(events.OrderPlaced)
	case StepRefund:
		apply = s.refund
	case StepCoinsReversal:
		apply = func(ctx context.Context, order *domain.Order) error {
			_, err := s.coins.ReverseEarned(ctx, order.UserID, order.ID)
			return err
		}
	case StepCommissionReversal:
		apply = func(ctx context.Context, order *domain.Order) error {
			return s.commissions.Reverse(ctx, order.ID)
		}
	case StepOrderCancelled:
		apply = s.publish(events.OrderCancelled)
	default:
		return SettlementStep{}, fmt.Errorf("%w: %s", ErrUnknownStep, name)
	}
	return SettlementStep{Name: name, Apply: apply}, nil
}

func (s *Service) steps(names ...string) []SettlementStep {
	steps := make([]SettlementStep, 0, len(names))
	for _, name := range names {
		st, err := s.step(name)
		if err != nil {
			zap.L().Error("skipping settlement step", zap.Error(err))
			continue
		}
		steps = append(steps, st)
	}
	return steps
}

func (s *Service) placementSteps(order *domain.Order) []SettlementStep {
	var names []string
	if order.CouponCode != "" {
		names = append(names, StepCoupon)
	}
	if order.AffiliateClickID != 0 {
		names = append(names, StepCommission)
	}
	if s.coinsToCredit(order) > 0 {
		names = append(names, StepCoins)
	}
	names = append(names, StepOrderPlaced)
	return s.steps(names...)
}

func (s *Service) cancellationSteps(order *domain.Order) []SettlementStep {
	var names []string
	if refundable(order) {
		names = append(names, StepRefund)
	}
	if s.opts.ReverseOnCancel {
		names = append(names, StepCoinsReversal)
		if order.AffiliateClickID != 0 {
			names = append(names, StepCommissionReversal)
		}
	}
	names = append(names, StepOrderCancelled)
	return s.steps(names...)
}

func refundable(order *domain.Order) bool {
	return order.PaymentMethod != domain.PaymentCashOnDelivery && order.TotalAmount.IsPositive()
}

func (s *Service) coinsToCredit(order *domain.Order) int64 {
	if !s.coins.Enabled() {
		return 0
	}
	return s.coins.CoinsEarned(order.TotalAmount) + order.BonusCoins
}

func (s *Service) consumeCoupon(ctx context.Context, order *domain.Order) error {
	_, err := s.coupons.Consume(ctx, order.CouponCode, order.ID, order.Subtotal)
	return err
}

// recordCommission needs the order items; an order loaded without them would
// accrue nothing.
func (s *Service) recordCommission(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return errors.New("order has no items loaded")
	}
	return s.commissions.Record(ctx, order)
}

// creditCoins pays the coupon bonus only once the coupon is bound to this
// order. Consume is a no-op when the coupon step already did it.
func (s *Service) creditCoins(ctx context.Context, order *domain.Order) error {
	coins := s.coinsToCredit(order)
	if order.CouponCode != "" && order.BonusCoins > 0 {
		_, err := s.coupons.Consume(ctx, order.CouponCode, order.ID, order.Subtotal)
		switch {
		case isCouponRejection(err):
			zap.L().Warn("coupon not consumed, crediting without bonus",
				zap.Int("order_id", order.ID), zap.String("code", order.CouponCode), zap.Error(err))
			coins -= order.BonusCoins
		case err != nil:
			return err
		}
	}
	return s.coins.Credit(ctx, order.UserID, coins, order.ID)
}

func (s *Service) refund(ctx context.Context, order *domain.Order) error {
	return s.wallet.Credit(ctx, order.UserID, order.TotalAmount, refundReference, strconv.Itoa(order.ID))
}

func (s *Service) publish(eventType string) func(ctx context.Context, order *domain.Order) error {
	return func(ctx context.Context, order *domain.Order) error {
		return s.publisher.Publish(ctx, events.NewOrderEvent(eventType, order))
	}
}

// settle runs the steps concurrently. A failing step does not stop the
// others; every result is recorded as an outcome.
func (s *Service) settle(ctx context.Context, order *domain.Order, steps []SettlementStep) []domain.SettlementOutcome {
	ctx = context.WithoutCancel(ctx)
	outcomes := make([]domain.SettlementOutcome, len(steps))

	var g errgroup.Group
	for i, st := range steps {
		g.Go(func() error {
			outcomes[i] = s.runStep(ctx, order, st)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *Service) runStep(ctx context.Context, order *domain.Order, st SettlementStep) domain.SettlementOutcome {
	stepCtx, cancel := context.WithTimeout(ctx, s.opts.StepTimeout)
	start := time.Now()
	err := st.Apply(stepCtx, order)
	cancel()
	s.metrics.ObserveStep(st.Name, time.Since(start), err)

	outcome := domain.SettlementOutcome{
		OrderID: order.ID,
		Step:    st.Name,
		Status:  domain.OutcomeSucceeded,
	}
	if err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Reason = err.Error()
		zap.L().Warn("settlement step failed",
			zap.Int("order_id", order.ID),
			zap.String("step", st.Name),
			zap.Error(err))
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.opts.StepTimeout)
	defer cancel()
	if err := s.outcomes.Save(saveCtx, &outcome); err != nil {
		zap.L().Error("can't save settlement outcome",
			zap.Int("order_id", order.ID),
			zap.String("step", st.Name),
			zap.Error(err))
	}
	return outcome
}

// localLocker guards checkouts within one process when no shared lock store
// is configured.
type localLocker struct {
	held sync.Map
}

func NewLocalLocker() Locker {
	return &localLocker{}
}

func (l *localLocker) Lock(_ context.Context, key string) (bool, error) {
	_, loaded := l.held.LoadOrStore(key, struct{}{})
	return !loaded, nil
}

func (l *localLocker) Unlock(_ context.Context, key string) error {
	l.held.Delete(key)
	return nil
}
