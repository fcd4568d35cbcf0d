package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	GetBalance(ctx context.Context, userID int) (*domain.WalletBalance, error)
	CreateBalance(ctx context.Context, userID int) (*domain.WalletBalance, error)
	Credit(ctx context.Context, txn *domain.WalletTransaction) (bool, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
)

// GetBalance returns a zero balance for users without a wallet row.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.WalletBalance, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.WalletBalance{UserID: userID, Balance: decimal.Zero}, nil
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.WalletBalance, error) {
	balance, err := s.repo.CreateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Credit adds money to the wallet. A credit is recorded at most once per
// reference, so repeating it is safe.
func (s *Service) Credit(ctx context.Context, userID int, amount decimal.Decimal, referenceType, referenceID string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	txn := &domain.WalletTransaction{
		UserID:        userID,
		Type:          domain.WalletCredit,
		Amount:        amount,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
	}
	applied, err := s.repo.Credit(ctx, txn)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	if !applied {
		zap.L().Info("wallet credit already recorded",
			zap.String("reference_type", referenceType), zap.String("reference_id", referenceID))
		return nil
	}
	zap.L().Info("wallet credited", zap.Int("user_id", userID), zap.String("amount", amount.StringFixed(2)))
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	txns, err := s.repo.GetTransactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
