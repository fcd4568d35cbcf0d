package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
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

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)
	amount := decimal.RequireFromString("250.50")

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.WalletBalance
	}{
		{
			name:   "Balance exists",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance FROM wallet_balances WHERE user_id = $1")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, amount))
			},
			result: &domain.WalletBalance{UserID: 1, Balance: amount},
		},
		{
			name:   "No balance row",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_balances WHERE user_id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_balances WHERE user_id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_balances (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id)")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, decimal.Zero))

	balance, err := repo.CreateBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, balance.UserID)
	assert.True(t, balance.Balance.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Credit(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager)
		expectErr bool
		applied   bool
	}{
		{
			name: "First credit for reference",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
					WithArgs(1, domain.WalletCredit, pgxmock.AnyArg(), "order_cancellation", "7").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
				mock.ExpectExec(regexp.QuoteMeta("SET balance = wallet_balances.balance + EXCLUDED.balance")).
					WithArgs(1, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			applied: true,
		},
		{
			name: "Repeated reference is a no-op",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
					WithArgs(1, domain.WalletCredit, pgxmock.AnyArg(), "order_cancellation", "7").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Balance update fails",
			mockSetup: func(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager) {
				runInTx(tx)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_balances")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tt.mockSetup(mock, tx)

			txn := &domain.WalletTransaction{
				UserID:        1,
				Amount:        decimal.RequireFromString("450.00"),
				ReferenceType: "order_cancellation",
				ReferenceID:   "7",
			}
			applied, err := repo.Credit(context.Background(), txn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.applied, applied)
			if tt.applied {
				assert.Equal(t, 3, txn.ID)
				assert.Equal(t, domain.WalletCredit, txn.Type)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	amount := decimal.RequireFromString("450.00")

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "reference_type", "reference_id", "created_at"}).
			AddRow(3, 1, domain.WalletCredit, amount, "order_cancellation", "7", now))

	txns, err := repo.GetTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.WalletTransaction{{
		ID: 3, UserID: 1, Type: domain.WalletCredit, Amount: amount,
		ReferenceType: "order_cancellation", ReferenceID: "7", CreatedAt: now,
	}}, txns)

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(2).
		WillReturnError(errors.New("database error"))
	_, err = repo.GetTransactions(context.Background(), 2)
	assert.Error(t, err)
}
