package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.WalletBalance, error) {
	query := `
        SELECT user_id, balance
        FROM wallet_balances
        WHERE user_id = $1
    `
	var balance domain.WalletBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, userID int) (*domain.WalletBalance, error) {
	query := `
        INSERT INTO wallet_balances (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING user_id, balance
    `
	var balance domain.WalletBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Balance)
	if err != nil {
		zap.L().Error("failed to create wallet balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit records the transaction and adds its amount to the balance in one
// transaction. It reports false when a transaction with the same reference
// was already recorded; the balance is left untouched in that case.
func (r *Repository) Credit(ctx context.Context, txn *domain.WalletTransaction) (bool, error) {
	insertTxn := `
        INSERT INTO wallet_transactions (user_id, type, amount, reference_type, reference_id)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (reference_type, reference_id, type) DO NOTHING
        RETURNING id, created_at
    `
	upsertBalance := `
        INSERT INTO wallet_balances (user_id, balance)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET balance = wallet_balances.balance + EXCLUDED.balance
    `
	applied := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertTxn, txn.UserID, domain.WalletCredit, txn.Amount, txn.ReferenceType, txn.ReferenceID).
			Scan(&txn.ID, &txn.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, upsertBalance, txn.UserID, txn.Amount); err != nil {
			return err
		}
		txn.Type = domain.WalletCredit
		applied = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Int("user_id", txn.UserID), zap.Error(err))
		return false, err
	}
	return applied, nil
}

func (r *Repository) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, type, amount, reference_type, reference_id, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.ReferenceType, &t.ReferenceID, &t.CreatedAt); err != nil {
			zap.L().Error("failed to scan wallet transaction", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
