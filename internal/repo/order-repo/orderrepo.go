package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
)

const orderColumns = `id, user_id, order_number, idempotency_key, status, subtotal, coupon_code, coupon_discount,
	bonus_coins, coins_redeemed, coins_discount, total_amount, payment_method, COALESCE(affiliate_click_id, 0),
	shipping_name, shipping_phone, shipping_address, shipping_city, shipping_postal_code, created_at, updated_at`

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

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.UserID, &order.OrderNumber, &order.IdempotencyKey, &order.Status,
		&order.Subtotal, &order.CouponCode, &order.CouponDiscount, &order.BonusCoins,
		&order.CoinsRedeemed, &order.CoinsDiscount, &order.TotalAmount, &order.PaymentMethod,
		&order.AffiliateClickID, &order.Shipping.Name, &order.Shipping.Phone, &order.Shipping.Address,
		&order.Shipping.City, &order.Shipping.PostalCode, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE order_number = $1
    `
	return r.findOne(ctx, query, orderNumber)
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE idempotency_key = $1
    `
	return r.findOne(ctx, query, key)
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) FindItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_id, quantity, unit_price, line_total
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.LineTotal)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Save inserts the order and its items in one transaction and fills in the
// generated ids and timestamps.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	orderQuery := `
        INSERT INTO orders (user_id, order_number, idempotency_key, status, subtotal, coupon_code, coupon_discount,
            bonus_coins, coins_redeemed, coins_discount, total_amount, payment_method, affiliate_click_id,
            shipping_name, shipping_phone, shipping_address, shipping_city, shipping_postal_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, 0), $14, $15, $16, $17, $18)
        RETURNING id, created_at, updated_at
    `
	itemQuery := `
        INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, orderQuery,
			order.UserID, order.OrderNumber, order.IdempotencyKey, order.Status, order.Subtotal,
			order.CouponCode, order.CouponDiscount, order.BonusCoins, order.CoinsRedeemed, order.CoinsDiscount,
			order.TotalAmount, order.PaymentMethod, order.AffiliateClickID, order.Shipping.Name,
			order.Shipping.Phone, order.Shipping.Address, order.Shipping.City, order.Shipping.PostalCode,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			err := r.db.QueryRow(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal).
				Scan(&item.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "orders_order_number_key" {
				return domain.ErrOrderNumberTaken
			}
			return domain.ErrConflict
		}
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus moves the order from its current status to another and
// refreshes Status and UpdatedAt. It reports false when the order was no
// longer in the status it was read with.
func (r *Repository) UpdateStatus(ctx context.Context, order *domain.Order, to domain.OrderStatus) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3
        RETURNING updated_at
    `
	var updatedAt time.Time
	err := r.db.QueryRow(ctx, query, to, order.ID, order.Status).Scan(&updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return false, err
	}
	order.Status = to
	order.UpdatedAt = updatedAt
	return true, nil
}
