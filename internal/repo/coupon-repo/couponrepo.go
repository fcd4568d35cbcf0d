package couponrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `
        SELECT id, code, discount_type, discount_value, max_discount, min_order_value, bonus_coins,
            valid_from, valid_to, active, COALESCE(order_id, 0)
        FROM coupons
        WHERE code = $1
    `
	var c domain.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MaxDiscount, &c.MinOrderValue, &c.BonusCoins,
		&c.ValidFrom, &c.ValidTo, &c.Active, &c.OrderID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find coupon", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// MarkConsumed binds the coupon to the order. Binding it to the same order
// again succeeds. It reports false when another order consumed it first.
func (r *Repository) MarkConsumed(ctx context.Context, couponID, orderID int, discount decimal.Decimal) (bool, error) {
	query := `
        UPDATE coupons
        SET order_id = $1, discount_applied = $2, consumed_at = COALESCE(consumed_at, now())
        WHERE id = $3 AND (order_id IS NULL OR order_id = $1)
    `
	tag, err := r.db.Exec(ctx, query, orderID, discount, couponID)
	if err != nil {
		zap.L().Error("can't mark coupon consumed", zap.Int("coupon_id", couponID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
