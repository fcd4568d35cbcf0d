package coinrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func runInTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_GetWallet(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, available_coins, lifetime_earned FROM loyalty_wallets WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "available_coins", "lifetime_earned"}).AddRow(1, int64(120), int64(300)))
	wallet, err := repo.GetWallet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.LoyaltyWallet{UserID: 1, AvailableCoins: 120, LifetimeEarned: 300}, wallet)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_wallets")).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)
	wallet, err = repo.GetWallet(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, wallet)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_wallets")).
		WithArgs(3).
		WillReturnError(errors.New("database error"))
	_, err = repo.GetWallet(context.Background(), 3)
	assert.Error(t, err)
}

func TestRepository_CreateWallet(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loyalty_wallets (user_id, available_coins, lifetime_earned) VALUES ($1, 0, 0) ON CONFLICT (user_id) DO NOTHING")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.CreateWallet(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Redeem(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager)
		expectErr error
		anyErr    bool
		debited   bool
	}{
		{
			name: "Enough coins",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $2 AND available_coins >= $1")).
					WithArgs(int64(100), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, 'redeemed', $2, 'confirmed', $3)")).
					WithArgs(1, int64(100), "key-1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			debited: true,
		},
		{
			name: "Not enough coins",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE loyalty_wallets")).
					WithArgs(int64(100), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Reference already redeemed",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE loyalty_wallets")).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coin_transactions")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE loyalty_wallets")).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tt.mockSetup(mock, tx)

			debited, err := repo.Redeem(context.Background(), 1, 100, "key-1")
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.debited, debited)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager)
		expectErr bool
		credited  bool
	}{
		{
			name: "First credit for order",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (reference_order_id) WHERE type = 'earned' DO NOTHING")).
					WithArgs(1, int64(45), 7).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
				mock.ExpectExec(regexp.QuoteMeta("SET available_coins = loyalty_wallets.available_coins + EXCLUDED.available_coins")).
					WithArgs(1, int64(45)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			credited: true,
		},
		{
			name: "Order already credited",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO coin_transactions")).
					WithArgs(1, int64(45), 7).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Wallet update fails",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO coin_transactions")).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loyalty_wallets")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tt.mockSetup(mock, tx)

			credited, err := repo.Credit(context.Background(), 1, 45, 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.credited, credited)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ReverseRedemption(t *testing.T) {
	t.Run("Redemption restored", func(t *testing.T) {
		repo, mock, tx := NewMock(t)
		runInTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("AND type = 'redeemed' AND status <> 'reversed' RETURNING amount")).
			WithArgs(1, "key-1").
			WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(100)))
		mock.ExpectExec(regexp.QuoteMeta("SET available_coins = available_coins + $1")).
			WithArgs(int64(100), 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, 'reversed', $2, 'confirmed', $3)")).
			WithArgs(1, int64(100), "key-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		amount, err := repo.ReverseRedemption(context.Background(), 1, "key-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), amount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to reverse", func(t *testing.T) {
		repo, mock, tx := NewMock(t)
		runInTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE coin_transactions")).
			WithArgs(1, "key-1").
			WillReturnError(pgx.ErrNoRows)

		amount, err := repo.ReverseRedemption(context.Background(), 1, "key-1")
		assert.NoError(t, err)
		assert.Zero(t, amount)
	})
}

func TestRepository_ReverseEarned(t *testing.T) {
	t.Run("Earned coins taken back", func(t *testing.T) {
		repo, mock, tx := NewMock(t)
		runInTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("AND reference_order_id = $2 AND type = 'earned'")).
			WithArgs(1, 7).
			WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(45)))
		mock.ExpectExec(regexp.QuoteMeta("GREATEST(available_coins - $1, 0)")).
			WithArgs(int64(45), 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coin_transactions")).
			WithArgs(1, int64(45), 7).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		amount, err := repo.ReverseEarned(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(45), amount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock, tx := NewMock(t)
		runInTx(tx)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE coin_transactions")).
			WillReturnError(errors.New("database error"))

		_, err := repo.ReverseEarned(context.Background(), 1, 7)
		assert.Error(t, err)
	})
}

func TestRepository_ListTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM coin_transactions WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "status", "reference_order_id", "reference", "created_at"}).
			AddRow(2, 1, domain.CoinEarned, int64(45), domain.CoinStatusPending, 7, "", now).
			AddRow(1, 1, domain.CoinRedeemed, int64(100), domain.CoinStatusConfirmed, 0, "key-1", now))

	txns, err := repo.ListTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, domain.CoinEarned, txns[0].Type)
	assert.Equal(t, 7, txns[0].ReferenceOrderID)
	assert.Equal(t, "key-1", txns[1].Reference)
}
