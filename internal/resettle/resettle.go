package resettle

//go:generate mockgen -source=resettle.go -destination=mock_resettle.go -package=resettle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/storefront/internal/domain"
)

// Settler re-runs failed settlement steps.
type Settler interface {
	FailedOutcomes(ctx context.Context, limit int) ([]domain.SettlementOutcome, error)
	Retry(ctx context.Context, outcome domain.SettlementOutcome) (domain.SettlementOutcome, error)
}

type Config struct {
	Interval time.Duration
	Batch    int
	Workers  int
}

// Service periodically picks up failed settlement steps and retries them on
// a bounded worker pool.
type Service struct {
	settler    Settler
	workerPool RetryPool
	interval   time.Duration
	batch      int
}

func New(settler Settler, cfg Config) *Service {
	if cfg.Batch <= 0 {
		cfg.Batch = 100
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	return &Service{
		settler:    settler,
		workerPool: NewWorkerPool(cfg.Workers),
		interval:   cfg.Interval,
		batch:      cfg.Batch,
	}
}

// Start runs the retry loop until ctx is cancelled. A zero interval disables
// retries.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("settlement retries disabled")
		return
	}
	zap.L().Info("settlement retry worker started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping settlement retries")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processOutcomes(ctx)
		}
	}
}

func (s *Service) processOutcomes(ctx context.Context) {
	failed, err := s.settler.FailedOutcomes(ctx, s.batch)
	if err != nil {
		zap.L().Error("failed to fetch failed settlement steps", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, outcome := range failed {
		g.Go(func() error {
			queued, err := s.workerPool.Enqueue(ctx, RetryTask{
				OrderID: outcome.OrderID,
				Step:    outcome.Step,
				Run:     func() error { return s.retry(ctx, outcome) },
			})
			if err != nil {
				return err
			}
			if !queued {
				zap.L().Debug("settlement retry already in flight",
					zap.Int("order_id", outcome.OrderID), zap.String("step", outcome.Step))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling settlement retries", zap.Error(err))
	}
}

func (s *Service) retry(ctx context.Context, outcome domain.SettlementOutcome) error {
	res, err := s.settler.Retry(ctx, outcome)
	if err != nil {
		return fmt.Errorf("retry %s for order %d: %w", outcome.Step, outcome.OrderID, err)
	}
	if res.Status == domain.OutcomeSucceeded {
		zap.L().Info("settlement step recovered",
			zap.Int("order_id", outcome.OrderID),
			zap.String("step", outcome.Step),
			zap.Int("attempts", res.Attempts))
	}
	return nil
}
