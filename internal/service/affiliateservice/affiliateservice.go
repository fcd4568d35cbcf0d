package affiliateservice

//go:generate mockgen -source=affiliateservice.go -destination=mock_affiliateservice.go -package=affiliateservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	FindClick(ctx context.Context, clickID int64) (*domain.AffiliateClick, error)
	CreateCommission(ctx context.Context, c *domain.AffiliateCommission) (bool, error)
	ReverseByOrder(ctx context.Context, orderID int) (int64, error)
	ListByAffiliate(ctx context.Context, affiliateID int) ([]domain.AffiliateCommission, error)
	SumActive(ctx context.Context, affiliateID int) (decimal.Decimal, error)
}

type Service struct {
	repo      Repo
	minPayout decimal.Decimal
}

func New(repo Repo, minPayout decimal.Decimal) *Service {
	return &Service{
		repo:      repo,
		minPayout: minPayout,
	}
}

var (
	ErrNoAttribution = errors.New("order is not attributed to an affiliate")
	ErrClickNotFound = errors.New("affiliate click not found")
)

var hundred = decimal.NewFromInt(100)

// Commission applies the click rule to every item: a percentage of the line
// total, or a flat amount per unit.
func Commission(click *domain.AffiliateClick, items []domain.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		switch click.RuleType {
		case domain.CommissionPercentage:
			total = total.Add(item.LineTotal.Mul(click.RuleValue).Div(hundred))
		case domain.CommissionFlat:
			total = total.Add(click.RuleValue.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return total.Round(2)
}

// Record accrues the commission for an attributed order. Recording the same
// order again leaves the existing commission in place.
func (s *Service) Record(ctx context.Context, order *domain.Order) error {
	if order.AffiliateClickID == 0 {
		return ErrNoAttribution
	}
	click, err := s.repo.FindClick(ctx, order.AffiliateClickID)
	if err != nil {
		return err
	}
	if click == nil {
		return ErrClickNotFound
	}

	commission := &domain.AffiliateCommission{
		AffiliateID: click.AffiliateID,
		OrderID:     order.ID,
		ClickID:     click.ID,
		Amount:      Commission(click, order.Items),
		Status:      domain.CommissionPending,
	}
	created, err := s.repo.CreateCommission(ctx, commission)
	if err != nil {
		return err
	}
	if !created {
		zap.L().Info("commission already recorded", zap.Int("order_id", order.ID))
		return nil
	}
	zap.L().Info("commission recorded",
		zap.Int("affiliate_id", click.AffiliateID),
		zap.Int("order_id", order.ID),
		zap.String("amount", commission.Amount.StringFixed(2)))
	return nil
}

func (s *Service) Reverse(ctx context.Context, orderID int) error {
	n, err := s.repo.ReverseByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	zap.L().Info("commissions reversed", zap.Int("order_id", orderID), zap.Int64("count", n))
	return nil
}

func (s *Service) GetCommissions(ctx context.Context, affiliateID int) ([]domain.AffiliateCommission, error) {
	return s.repo.ListByAffiliate(ctx, affiliateID)
}

// PayoutEligible returns the affiliate's live commission total and whether it
// reached the minimum payout.
func (s *Service) PayoutEligible(ctx context.Context, affiliateID int) (decimal.Decimal, bool, error) {
	sum, err := s.repo.SumActive(ctx, affiliateID)
	if err != nil {
		return decimal.Zero, false, err
	}
	return sum, sum.GreaterThanOrEqual(s.minPayout), nil
}
