package affiliaterepo

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

func (r *Repository) FindClick(ctx context.Context, clickID int64) (*domain.AffiliateClick, error) {
	query := `
        SELECT id, affiliate_id, rule_type, rule_value, created_at
        FROM affiliate_clicks
        WHERE id = $1
    `
	var click domain.AffiliateClick
	err := r.db.QueryRow(ctx, query, clickID).Scan(&click.ID, &click.AffiliateID, &click.RuleType, &click.RuleValue, &click.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate click", zap.Int64("click_id", clickID), zap.Error(err))
		return nil, err
	}
	return &click, nil
}

// CreateCommission inserts the commission unless the affiliate already holds
// a live commission for the order. It reports whether a row was written.
func (r *Repository) CreateCommission(ctx context.Context, c *domain.AffiliateCommission) (bool, error) {
	query := `
        INSERT INTO affiliate_commissions (affiliate_id, order_id, click_id, amount, status)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (affiliate_id, order_id) WHERE status <> 'reversed' DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, c.AffiliateID, c.OrderID, c.ClickID, c.Amount, c.Status).Scan(&c.ID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't create commission", zap.Int("order_id", c.OrderID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) ReverseByOrder(ctx context.Context, orderID int) (int64, error) {
	query := `
        UPDATE affiliate_commissions
        SET status = 'reversed'
        WHERE order_id = $1 AND status <> 'reversed'
    `
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't reverse commissions", zap.Int("order_id", orderID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListByAffiliate(ctx context.Context, affiliateID int) ([]domain.AffiliateCommission, error) {
	query := `
        SELECT id, affiliate_id, order_id, click_id, amount, status, created_at
        FROM affiliate_commissions
        WHERE affiliate_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't list commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.AffiliateCommission
	for rows.Next() {
		var c domain.AffiliateCommission
		if err := rows.Scan(&c.ID, &c.AffiliateID, &c.OrderID, &c.ClickID, &c.Amount, &c.Status, &c.CreatedAt); err != nil {
			zap.L().Error("can't scan commission", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}

func (r *Repository) SumActive(ctx context.Context, affiliateID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM affiliate_commissions
        WHERE affiliate_id = $1 AND status <> 'reversed'
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, affiliateID).Scan(&sum); err != nil {
		zap.L().Error("can't sum commissions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
