package loyaltyservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
)

func NewMock(t *testing.T, policy Policy) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo, policy), repo
}

func TestCoinsToMoney(t *testing.T) {
	assert.Equal(t, "2000.00", CoinsToMoney(20000).StringFixed(2))
	assert.Equal(t, "0.10", CoinsToMoney(1).StringFixed(2))
	assert.True(t, CoinsToMoney(0).IsZero())
}

func TestCoinsEarned(t *testing.T) {
	service, _ := NewMock(t, DefaultPolicy())

	tests := []struct {
		total    string
		expected int64
	}{
		{"99.99", 0},
		{"100", 10},
		{"459.00", 45},
		{"1234.56", 123},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.CoinsEarned(decimal.RequireFromString(tt.total)))
		})
	}

	disabled, _ := NewMock(t, Policy{})
	assert.Zero(t, disabled.CoinsEarned(decimal.NewFromInt(1000)))
}

func TestRedeem(t *testing.T) {
	tests := []struct {
		name          string
		policy        Policy
		coins         int64
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name:   "Coins redeemed",
			policy: DefaultPolicy(),
			coins:  100,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Redeem(gomock.Any(), 1, int64(100), "key-1").Return(true, nil)
			},
		},
		{
			name:   "Insufficient coins",
			policy: DefaultPolicy(),
			coins:  20000,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Redeem(gomock.Any(), 1, int64(20000), "key-1").Return(false, nil)
			},
			expectedError: ErrInsufficientCoins,
		},
		{
			name:          "Programme disabled",
			policy:        Policy{},
			coins:         100,
			expectedError: ErrLoyaltyDisabled,
		},
		{
			name:          "Zero coins",
			policy:        DefaultPolicy(),
			coins:         0,
			expectedError: ErrInvalidCoins,
		},
		{
			name:          "Below redemption floor",
			policy:        Policy{Enabled: true, MinRedeem: 50},
			coins:         10,
			expectedError: ErrBelowMinRedeem,
		},
		{
			name:   "Reference already redeemed",
			policy: DefaultPolicy(),
			coins:  100,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Redeem(gomock.Any(), 1, int64(100), "key-1").Return(false, domain.ErrConflict)
			},
			expectedError: ErrAlreadyRedeemed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t, tt.policy)
			if tt.prepareMock != nil {
				tt.prepareMock(repo)
			}

			err := service.Redeem(context.Background(), 1, tt.coins, "key-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t, DefaultPolicy())

	repo.EXPECT().Credit(gomock.Any(), 1, int64(45), 7).Return(true, nil)
	assert.NoError(t, service.Credit(context.Background(), 1, 45, 7))

	repo.EXPECT().Credit(gomock.Any(), 1, int64(45), 7).Return(false, nil)
	assert.NoError(t, service.Credit(context.Background(), 1, 45, 7))

	assert.NoError(t, service.Credit(context.Background(), 1, 0, 7))

	repo.EXPECT().Credit(gomock.Any(), 1, int64(45), 8).Return(false, errors.New("some error"))
	assert.Error(t, service.Credit(context.Background(), 1, 45, 8))
}

func TestGetWallet(t *testing.T) {
	service, repo := NewMock(t, DefaultPolicy())

	repo.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, nil)
	wallet, err := service.GetWallet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.LoyaltyWallet{UserID: 1}, wallet)

	repo.EXPECT().GetWallet(gomock.Any(), 2).Return(&domain.LoyaltyWallet{UserID: 2, AvailableCoins: 50}, nil)
	wallet, err = service.GetWallet(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), wallet.AvailableCoins)
}

func TestReversals(t *testing.T) {
	service, repo := NewMock(t, DefaultPolicy())

	repo.EXPECT().ReverseRedemption(gomock.Any(), 1, "key-1").Return(int64(100), nil)
	coins, err := service.ReverseRedemption(context.Background(), 1, "key-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(100), coins)

	repo.EXPECT().ReverseEarned(gomock.Any(), 1, 7).Return(int64(0), errors.New("some error"))
	_, err = service.ReverseEarned(context.Background(), 1, 7)
	assert.Error(t, err)
}

// walletStore mimics the conditional debit of the coin repository.
type walletStore struct {
	Repo
	mu        sync.Mutex
	available int64
}

func (w *walletStore) Redeem(_ context.Context, _ int, coins int64, _ string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.available < coins {
		return false, nil
	}
	w.available -= coins
	return true, nil
}

func TestRedeemConcurrentNeverOverdraws(t *testing.T) {
	store := &walletStore{available: 1000}
	service := New(store, DefaultPolicy())

	var ok, insufficient atomic.Int64
	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := service.Redeem(context.Background(), 1, 100, "key")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrInsufficientCoins):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(10), ok.Load())
	assert.Equal(t, int64(15), insufficient.Load())
	assert.Zero(t, store.available)
}
