package loyaltyservice

//go:generate mockgen -source=loyaltyservice.go -destination=mock_loyaltyservice.go -package=loyaltyservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	GetWallet(ctx context.Context, userID int) (*domain.LoyaltyWallet, error)
	CreateWallet(ctx context.Context, userID int) error
	Redeem(ctx context.Context, userID int, coins int64, reference string) (bool, error)
	Credit(ctx context.Context, userID int, coins int64, orderID int) (bool, error)
	ReverseRedemption(ctx context.Context, userID int, reference string) (int64, error)
	ReverseEarned(ctx context.Context, userID, orderID int) (int64, error)
	ListTransactions(ctx context.Context, userID int) ([]domain.CoinTransaction, error)
}

// Policy holds the coin programme rules. MinOrder is the smallest order total
// that earns coins and EarnRate the coins earned per unit of that total.
type Policy struct {
	Enabled   bool
	MinOrder  decimal.Decimal
	EarnRate  decimal.Decimal
	MinRedeem int64
}

func DefaultPolicy() Policy {
	return Policy{
		Enabled:  true,
		MinOrder: decimal.NewFromInt(100),
		EarnRate: decimal.RequireFromString("0.1"),
	}
}

// CoinValue is the money value of a single coin.
var CoinValue = decimal.RequireFromString("0.10")

var (
	ErrLoyaltyDisabled   = errors.New("loyalty programme is disabled")
	ErrInvalidCoins      = errors.New("coins must be positive")
	ErrBelowMinRedeem    = errors.New("coins below minimum redemption")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrAlreadyRedeemed   = errors.New("coins already redeemed for this checkout")
)

type Service struct {
	repo   Repo
	policy Policy
}

func New(repo Repo, policy Policy) *Service {
	return &Service{
		repo:   repo,
		policy: policy,
	}
}

// CoinsToMoney converts a coin count into its money value.
func CoinsToMoney(coins int64) decimal.Decimal {
	return CoinValue.Mul(decimal.NewFromInt(coins))
}

func (s *Service) Enabled() bool {
	return s.policy.Enabled
}

// CoinsEarned is the number of coins an order with the given total earns.
func (s *Service) CoinsEarned(total decimal.Decimal) int64 {
	if !s.policy.Enabled || total.LessThan(s.policy.MinOrder) {
		return 0
	}
	return total.Mul(s.policy.EarnRate).Floor().IntPart()
}

// Redeem debits coins from the user's wallet. The reference ties the debit to
// a checkout so it can be reversed later.
func (s *Service) Redeem(ctx context.Context, userID int, coins int64, reference string) error {
	switch {
	case !s.policy.Enabled:
		return ErrLoyaltyDisabled
	case coins <= 0:
		return ErrInvalidCoins
	case coins < s.policy.MinRedeem:
		return fmt.Errorf("%w: minimum is %d", ErrBelowMinRedeem, s.policy.MinRedeem)
	}

	debited, err := s.repo.Redeem(ctx, userID, coins, reference)
	if errors.Is(err, domain.ErrConflict) {
		return ErrAlreadyRedeemed
	}
	if err != nil {
		return err
	}
	if !debited {
		zap.L().Info("insufficient coins", zap.Int("user_id", userID), zap.Int64("coins", coins))
		return ErrInsufficientCoins
	}
	zap.L().Info("coins redeemed", zap.Int("user_id", userID), zap.Int64("coins", coins))
	return nil
}

// Credit adds coins earned by an order. Crediting the same order twice has
// no further effect.
func (s *Service) Credit(ctx context.Context, userID int, coins int64, orderID int) error {
	if coins <= 0 {
		return nil
	}
	credited, err := s.repo.Credit(ctx, userID, coins, orderID)
	if err != nil {
		return err
	}
	if !credited {
		zap.L().Info("order already credited", zap.Int("order_id", orderID))
		return nil
	}
	zap.L().Info("coins credited", zap.Int("user_id", userID), zap.Int("order_id", orderID), zap.Int64("coins", coins))
	return nil
}

func (s *Service) ReverseRedemption(ctx context.Context, userID int, reference string) (int64, error) {
	coins, err := s.repo.ReverseRedemption(ctx, userID, reference)
	if err != nil {
		return 0, err
	}
	zap.L().Info("coin redemption reversed", zap.Int("user_id", userID), zap.Int64("coins", coins))
	return coins, nil
}

func (s *Service) ReverseEarned(ctx context.Context, userID, orderID int) (int64, error) {
	coins, err := s.repo.ReverseEarned(ctx, userID, orderID)
	if err != nil {
		return 0, err
	}
	zap.L().Info("earned coins reversed", zap.Int("order_id", orderID), zap.Int64("coins", coins))
	return coins, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID int) error {
	return s.repo.CreateWallet(ctx, userID)
}

// GetWallet returns an empty wallet for users that never held coins.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.LoyaltyWallet, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return &domain.LoyaltyWallet{UserID: userID}, nil
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.CoinTransaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}
