package couponrepo

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

var couponColumns = []string{
	"id", "code", "discount_type", "discount_value", "max_discount", "min_order_value", "bonus_coins",
	"valid_from", "valid_to", "active", "order_id",
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	value := decimal.NewFromInt(10)
	maxDiscount := decimal.NewFromInt(100)
	minOrder := decimal.NewFromInt(500)

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		result    *domain.Coupon
	}{
		{
			name: "Coupon found",
			code: "SAVE10",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
					WithArgs("SAVE10").
					WillReturnRows(pgxmock.NewRows(couponColumns).AddRow(
						4, "SAVE10", domain.DiscountPercentage, value, maxDiscount, minOrder, int64(20),
						from, &to, true, 0,
					))
			},
			result: &domain.Coupon{
				ID: 4, Code: "SAVE10", DiscountType: domain.DiscountPercentage, DiscountValue: value,
				MaxDiscount: maxDiscount, MinOrderValue: minOrder, BonusCoins: 20,
				ValidFrom: from, ValidTo: &to, Active: true,
			},
		},
		{
			name: "Coupon missing",
			code: "NOPE",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
					WithArgs("NOPE").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			code: "SAVE10",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
					WithArgs("SAVE10").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByCode(context.Background(), tt.code)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkConsumed(t *testing.T) {
	discount := decimal.NewFromInt(50)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		consumed  bool
	}{
		{
			name: "Coupon free",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $3 AND (order_id IS NULL OR order_id = $1)")).
					WithArgs(7, discount, 4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			consumed: true,
		},
		{
			name: "Coupon already taken",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE coupons")).
					WithArgs(7, discount, 4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE coupons")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			consumed, err := repo.MarkConsumed(context.Background(), 4, 7, discount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.consumed, consumed)
		})
	}
}
