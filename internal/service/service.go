package service

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/internal/handlers/auth"
	"github.com/GlebRadaev/storefront/internal/handlers/coupons"
	"github.com/GlebRadaev/storefront/internal/handlers/orders"
	"github.com/GlebRadaev/storefront/internal/handlers/wallet"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/service/affiliateservice"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/couponservice"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/internal/service/orderservice"
	"github.com/GlebRadaev/storefront/internal/service/settlementservice"
	"github.com/GlebRadaev/storefront/internal/service/walletservice"
	"github.com/GlebRadaev/storefront/pkg/metrics"

	pkgauth "github.com/GlebRadaev/storefront/pkg/auth"
)

// Infra carries the process-wide collaborators of the settlement service.
// Nil fields fall back to in-process defaults.
type Infra struct {
	Locker    settlementservice.Locker
	Publisher settlementservice.EventPublisher
	Metrics   *metrics.SettlementMetrics
	JWT       pkgauth.JWTServiceInterface
}

type Services struct {
	AuthService       auth.Service
	OrderService      orders.OrderReader
	SettlementService *settlementservice.Service
	WalletService     wallet.Service
	CoinService       wallet.CoinService
	CouponService     coupons.Service
	AffiliateService  *affiliateservice.Service
}

func loyaltyPolicy(cfg config.Loyalty) loyaltyservice.Policy {
	return loyaltyservice.Policy{
		Enabled:   cfg.Enabled,
		MinOrder:  decimal.NewFromFloat(cfg.MinOrder),
		EarnRate:  decimal.NewFromFloat(cfg.EarnRate),
		MinRedeem: cfg.MinRedeem,
	}
}

func New(repo *repo.Repositories, cfg *config.Config, infra Infra) *Services {
	jwtService := infra.JWT
	if jwtService == nil {
		jwtService = pkgauth.NewJWTService(cfg.JWTSecret)
	}

	walletService := walletservice.New(repo.WalletRepo)
	coinService := loyaltyservice.New(repo.CoinRepo, loyaltyPolicy(cfg.Loyalty))
	couponService := couponservice.New(repo.CouponRepo)
	orderService := orderservice.New(repo.OrderRepo)
	affiliateService := affiliateservice.New(repo.AffiliateRepo, decimal.NewFromFloat(cfg.Affiliate.MinPayout))
	authService := authservice.New(repo.UserRepo, walletService, coinService, &pkgauth.HashService{}, jwtService, cfg.SessionTTL)

	settlementService := settlementservice.New(settlementservice.Deps{
		Orders:      orderService,
		Coupons:     couponService,
		Coins:       coinService,
		Commissions: affiliateService,
		Wallet:      walletService,
		Outcomes:    repo.OutcomeRepo,
		Locker:      infra.Locker,
		Publisher:   infra.Publisher,
		Metrics:     infra.Metrics,
	}, settlementservice.Options{
		StepTimeout:     cfg.Settlement.StepTimeout,
		MaxAttempts:     cfg.Settlement.MaxAttempts,
		ReverseOnCancel: cfg.Settlement.ReverseOnCancel,
	})

	return &Services{
		AuthService:       authService,
		OrderService:      orderService,
		SettlementService: settlementService,
		WalletService:     walletService,
		CoinService:       coinService,
		CouponService:     couponService,
		AffiliateService:  affiliateService,
	}
}
