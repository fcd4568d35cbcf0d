package affiliaterepo

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

	"github.com/GlebRadaev/storefront/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_FindClick(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	rate := decimal.NewFromInt(5)

	mock.ExpectQuery(regexp.QuoteMeta("FROM affiliate_clicks WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "affiliate_id", "rule_type", "rule_value", "created_at"}).
			AddRow(int64(42), 9, domain.CommissionPercentage, rate, now))
	click, err := repo.FindClick(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, &domain.AffiliateClick{ID: 42, AffiliateID: 9, RuleType: domain.CommissionPercentage, RuleValue: rate, CreatedAt: now}, click)

	mock.ExpectQuery(regexp.QuoteMeta("FROM affiliate_clicks")).
		WithArgs(int64(43)).
		WillReturnError(pgx.ErrNoRows)
	click, err = repo.FindClick(context.Background(), 43)
	assert.NoError(t, err)
	assert.Nil(t, click)
}

func TestRepository_CreateCommission(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		created   bool
	}{
		{
			name: "New commission",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (affiliate_id, order_id) WHERE status <> 'reversed' DO NOTHING")).
					WithArgs(9, 7, int64(42), pgxmock.AnyArg(), domain.CommissionPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
			},
			created: true,
		},
		{
			name: "Commission already recorded",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO affiliate_commissions")).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO affiliate_commissions")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			c := &domain.AffiliateCommission{AffiliateID: 9, OrderID: 7, ClickID: 42, Amount: decimal.NewFromInt(25), Status: domain.CommissionPending}
			created, err := repo.CreateCommission(context.Background(), c)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created)
			if tt.created {
				assert.Equal(t, 5, c.ID)
			}
		})
	}
}

func TestRepository_ReverseByOrder(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'reversed' WHERE order_id = $1 AND status <> 'reversed'")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	n, err := repo.ReverseByOrder(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE affiliate_commissions")).
		WithArgs(8).
		WillReturnError(errors.New("database error"))
	_, err = repo.ReverseByOrder(context.Background(), 8)
	assert.Error(t, err)
}

func TestRepository_ListByAffiliate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.NewFromInt(25)

	mock.ExpectQuery(regexp.QuoteMeta("FROM affiliate_commissions WHERE affiliate_id = $1")).
		WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "affiliate_id", "order_id", "click_id", "amount", "status", "created_at"}).
			AddRow(5, 9, 7, int64(42), amount, domain.CommissionPending, now))

	list, err := repo.ListByAffiliate(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, []domain.AffiliateCommission{{ID: 5, AffiliateID: 9, OrderID: 7, ClickID: 42, Amount: amount, Status: domain.CommissionPending, CreatedAt: now}}, list)
}

func TestRepository_SumActive(t *testing.T) {
	repo, mock := NewMock(t)
	total := decimal.RequireFromString("125.50")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM affiliate_commissions")).
		WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(total))
	sum, err := repo.SumActive(context.Background(), 9)
	assert.NoError(t, err)
	assert.True(t, total.Equal(sum))
}
