package outcomerepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

const outcomeColumns = `id, order_id, step, status, reason, attempts, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save records the latest result of a step for an order. Repeated saves of
// the same step bump the attempt counter.
func (r *Repository) Save(ctx context.Context, o *domain.SettlementOutcome) error {
	query := `
        INSERT INTO settlement_outcomes (id, order_id, step, status, reason, attempts)
        VALUES ($1, $2, $3, $4, $5, 1)
        ON CONFLICT (order_id, step) DO UPDATE
        SET status = EXCLUDED.status,
            reason = EXCLUDED.reason,
            attempts = settlement_outcomes.attempts + 1,
            updated_at = now()
        RETURNING id, attempts, created_at, updated_at
    `
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, query, o.ID, o.OrderID, o.Step, o.Status, o.Reason).
		Scan(&o.ID, &o.Attempts, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save settlement outcome",
			zap.Int("order_id", o.OrderID), zap.String("step", o.Step), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListFailed(ctx context.Context, limit, maxAttempts int) ([]domain.SettlementOutcome, error) {
	query := `SELECT ` + outcomeColumns + `
        FROM settlement_outcomes
        WHERE status = 'failed' AND attempts < $1
        ORDER BY updated_at
        LIMIT $2
    `
	return r.list(ctx, query, maxAttempts, limit)
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.SettlementOutcome, error) {
	query := `SELECT ` + outcomeColumns + `
        FROM settlement_outcomes
        WHERE order_id = $1
        ORDER BY created_at
    `
	return r.list(ctx, query, orderID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.SettlementOutcome, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list settlement outcomes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var outcomes []domain.SettlementOutcome
	for rows.Next() {
		var o domain.SettlementOutcome
		if err := rows.Scan(&o.ID, &o.OrderID, &o.Step, &o.Status, &o.Reason, &o.Attempts, &o.CreatedAt, &o.UpdatedAt); err != nil {
			zap.L().Error("can't scan settlement outcome", zap.Error(err))
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
