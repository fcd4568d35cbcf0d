package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/internal/handlers"
	"github.com/GlebRadaev/storefront/internal/pg"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/resettle"
	"github.com/GlebRadaev/storefront/internal/service"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/events"
	"github.com/GlebRadaev/storefront/pkg/logger"
	"github.com/GlebRadaev/storefront/pkg/metrics"
	"github.com/GlebRadaev/storefront/pkg/redis"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	retrier  *resettle.Service
	registry *prometheus.Registry

	closers []io.Closer
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	infra, err := a.buildInfra(ctx, cfg)
	if err != nil {
		return err
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, infra)
	a.api = handlers.New(a.srv, infra.JWT, a.registry)
	a.retrier = resettle.New(a.srv.SettlementService, resettle.Config{
		Interval: cfg.Settlement.RetryInterval,
		Batch:    cfg.Settlement.RetryBatch,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.retrier.Start(ctx)
	a.closeOnDone(ctx, pool)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildInfra sets up the settlement collaborators. Redis and Kafka are
// optional; without them checkouts lock in-process and events are dropped.
func (a *Application) buildInfra(ctx context.Context, cfg *config.Config) (service.Infra, error) {
	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	infra := service.Infra{
		Metrics: metrics.NewSettlementMetrics(a.registry),
		JWT:     auth.NewJWTService(cfg.JWTSecret),
	}

	if cfg.RedisAddress != "" {
		client, err := redis.New(ctx, cfg.RedisAddress)
		if err != nil {
			zap.L().Error("redis connection failed: ", zap.Error(err))
			return infra, fmt.Errorf("can't connect to redis: %w", err)
		}
		a.closers = append(a.closers, client)
		infra.Locker = redis.NewCheckoutLocker(client, cfg.CheckoutLockTTL)
		zap.L().Info("checkout locks backed by redis", zap.String("address", cfg.RedisAddress))
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrdersTopic)
		a.closers = append(a.closers, publisher)
		infra.Publisher = publisher
		zap.L().Info("order events published to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaOrdersTopic))
	}

	return infra, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// closeOnDone releases external connections once the context is cancelled.
func (a *Application) closeOnDone(ctx context.Context, pool *pgxpool.Pool) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		for _, c := range a.closers {
			if err := c.Close(); err != nil {
				zap.L().Warn("close failed", zap.Error(err))
			}
		}
		pool.Close()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
