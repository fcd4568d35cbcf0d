package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*domain.Order, error)
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindItems(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, order *domain.Order, to domain.OrderStatus) (bool, error)
}

type Service struct {
	repo        Repo
	orderNumber func() (string, error)
}

func New(repo Repo) *Service {
	return &Service{
		repo:        repo,
		orderNumber: newOrderNumber,
	}
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists for idempotency key")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrStatusChanged      = errors.New("order status changed concurrently")
)

const orderNumberAttempts = 3

var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending:    {domain.OrderStatusProcessing, domain.OrderStatusCancelled},
	domain.OrderStatusProcessing: {domain.OrderStatusShipped, domain.OrderStatusCancelled},
	domain.OrderStatusShipped:    {domain.OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to the other.
func CanTransition(from, to domain.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// newOrderNumber returns 11 random digits followed by their Luhn check digit.
func newOrderNumber() (string, error) {
	payload := fmt.Sprintf("%011d", rand.Int64N(100_000_000_000))
	_, number, err := goluhn.Calculate(payload)
	if err != nil {
		return "", err
	}
	if number == "" {
		return "", fmt.Errorf("can't calculate check digit for %s", payload)
	}
	return number, nil
}

// Create persists a new pending order with its items. When an order with the
// same idempotency key already exists, that order is returned together with
// ErrOrderAlreadyExists.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.Status = domain.OrderStatusPending
	var err error
	for range orderNumberAttempts {
		order.OrderNumber, err = s.orderNumber()
		if err != nil {
			zap.L().Error("can't generate order number", zap.Error(err))
			return nil, err
		}
		err = s.repo.Save(ctx, order)
		if !errors.Is(err, domain.ErrOrderNumberTaken) {
			break
		}
		zap.L().Warn("order number collision, retrying", zap.String("order_number", order.OrderNumber))
	}

	switch {
	case err == nil:
		return order, nil
	case errors.Is(err, domain.ErrConflict):
		existing, findErr := s.GetByIdempotencyKey(ctx, order.IdempotencyKey)
		if findErr != nil {
			return nil, findErr
		}
		if existing == nil {
			return nil, err
		}
		zap.L().Info("order already exists", zap.String("idempotency_key", order.IdempotencyKey.String()))
		return existing, ErrOrderAlreadyExists
	default:
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.withItems(ctx, order)
}

// GetByIdempotencyKey returns nil without error when no order carries the key.
func (s *Service) GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.FindByIdempotencyKey(ctx, key)
	if err != nil || order == nil {
		return nil, err
	}
	return s.withItems(ctx, order)
}

// GetByNumber returns the user's order with the given number. Orders of other
// users are reported as not found.
func (s *Service) GetByNumber(ctx context.Context, userID int, orderNumber string) (*domain.Order, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return s.withItems(ctx, order)
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// SetStatus moves the order to the given status if the state machine allows
// it. A concurrent transition that got there first yields ErrStatusChanged.
func (s *Service) SetStatus(ctx context.Context, id int, to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransition(order.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	updated, err := s.repo.UpdateStatus(ctx, order, to)
	if err != nil {
		return nil, err
	}
	if !updated {
		zap.L().Warn("order status changed concurrently", zap.Int("order_id", id))
		return nil, ErrStatusChanged
	}
	return order, nil
}

func (s *Service) withItems(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := s.repo.FindItems(ctx, order.ID)
	if err != nil {
		zap.L().Error("failed to get order items", zap.Int("order_id", order.ID), zap.Error(err))
		return nil, err
	}
	order.Items = items
	return order, nil
}
