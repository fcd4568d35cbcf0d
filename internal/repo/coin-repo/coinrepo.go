package coinrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.LoyaltyWallet, error) {
	query := `
        SELECT user_id, available_coins, lifetime_earned
        FROM loyalty_wallets
        WHERE user_id = $1
    `
	var w domain.LoyaltyWallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&w.UserID, &w.AvailableCoins, &w.LifetimeEarned)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get loyalty wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) CreateWallet(ctx context.Context, userID int) error {
	query := `
        INSERT INTO loyalty_wallets (user_id, available_coins, lifetime_earned)
        VALUES ($1, 0, 0)
        ON CONFLICT (user_id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create loyalty wallet", zap.Error(err))
		return err
	}
	return nil
}

// Redeem debits coins only when the wallet holds at least that many. It
// reports false when the balance was insufficient. A second redemption under
// the same reference returns domain.ErrConflict.
func (r *Repository) Redeem(ctx context.Context, userID int, coins int64, reference string) (bool, error) {
	debit := `
        UPDATE loyalty_wallets
        SET available_coins = available_coins - $1
        WHERE user_id = $2 AND available_coins >= $1
    `
	record := `
        INSERT INTO coin_transactions (user_id, type, amount, status, reference)
        VALUES ($1, 'redeemed', $2, 'confirmed', $3)
    `
	debited := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, debit, coins, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := r.db.Exec(ctx, record, userID, coins, reference); err != nil {
			return err
		}
		debited = true
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return false, domain.ErrConflict
		}
		zap.L().Error("failed to redeem coins", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return debited, nil
}

// Credit records coins earned by an order and adds them to the wallet. It
// reports false when the order was already credited.
func (r *Repository) Credit(ctx context.Context, userID int, coins int64, orderID int) (bool, error) {
	record := `
        INSERT INTO coin_transactions (user_id, type, amount, status, reference_order_id)
        VALUES ($1, 'earned', $2, 'pending', $3)
        ON CONFLICT (reference_order_id) WHERE type = 'earned' DO NOTHING
        RETURNING id
    `
	upsert := `
        INSERT INTO loyalty_wallets (user_id, available_coins, lifetime_earned)
        VALUES ($1, $2, $2)
        ON CONFLICT (user_id) DO UPDATE
        SET available_coins = loyalty_wallets.available_coins + EXCLUDED.available_coins,
            lifetime_earned = loyalty_wallets.lifetime_earned + EXCLUDED.lifetime_earned
    `
	credited := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var id int
		err := r.db.QueryRow(ctx, record, userID, coins, orderID).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, upsert, userID, coins); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit coins", zap.Int("user_id", userID), zap.Int("order_id", orderID), zap.Error(err))
		return false, err
	}
	return credited, nil
}

// ReverseRedemption gives back the coins debited under reference and returns
// how many were restored. Zero means nothing was left to reverse.
func (r *Repository) ReverseRedemption(ctx context.Context, userID int, reference string) (int64, error) {
	flip := `
        UPDATE coin_transactions
        SET status = 'reversed'
        WHERE user_id = $1 AND reference = $2 AND type = 'redeemed' AND status <> 'reversed'
        RETURNING amount
    `
	restore := `
        UPDATE loyalty_wallets
        SET available_coins = available_coins + $1
        WHERE user_id = $2
    `
	audit := `
        INSERT INTO coin_transactions (user_id, type, amount, status, reference)
        VALUES ($1, 'reversed', $2, 'confirmed', $3)
    `
	var amount int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, flip, userID, reference).Scan(&amount)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, restore, amount, userID); err != nil {
			return err
		}
		_, err = r.db.Exec(ctx, audit, userID, amount, reference)
		return err
	})
	if err != nil {
		zap.L().Error("failed to reverse coin redemption", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return amount, nil
}

// ReverseEarned takes back the coins credited for the order. The wallet is
// floored at zero when some of those coins were already spent.
func (r *Repository) ReverseEarned(ctx context.Context, userID, orderID int) (int64, error) {
	flip := `
        UPDATE coin_transactions
        SET status = 'reversed'
        WHERE user_id = $1 AND reference_order_id = $2 AND type = 'earned' AND status <> 'reversed'
        RETURNING amount
    `
	deduct := `
        UPDATE loyalty_wallets
        SET available_coins = GREATEST(available_coins - $1, 0),
            lifetime_earned = GREATEST(lifetime_earned - $1, 0)
        WHERE user_id = $2
    `
	audit := `
        INSERT INTO coin_transactions (user_id, type, amount, status, reference_order_id)
        VALUES ($1, 'reversed', $2, 'confirmed', $3)
    `
	var amount int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, flip, userID, orderID).Scan(&amount)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, deduct, amount, userID); err != nil {
			return err
		}
		_, err = r.db.Exec(ctx, audit, userID, amount, orderID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to reverse earned coins", zap.Int("order_id", orderID), zap.Error(err))
		return 0, err
	}
	return amount, nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID int) ([]domain.CoinTransaction, error) {
	query := `
        SELECT id, user_id, type, amount, status, COALESCE(reference_order_id, 0), reference, created_at
        FROM coin_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list coin transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.CoinTransaction
	for rows.Next() {
		var t domain.CoinTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Status, &t.ReferenceOrderID, &t.Reference, &t.CreatedAt); err != nil {
			zap.L().Error("failed to scan coin transaction", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
