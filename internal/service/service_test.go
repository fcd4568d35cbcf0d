package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/internal/repo"
	"github.com/GlebRadaev/storefront/internal/service/affiliateservice"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/couponservice"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/internal/service/orderservice"
	"github.com/GlebRadaev/storefront/internal/service/settlementservice"
	"github.com/GlebRadaev/storefront/internal/service/walletservice"
	"github.com/GlebRadaev/storefront/pkg/metrics"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:      authservice.NewMockRepo(ctrl),
		OrderRepo:     orderservice.NewMockRepo(ctrl),
		CouponRepo:    couponservice.NewMockRepo(ctrl),
		CoinRepo:      loyaltyservice.NewMockRepo(ctrl),
		AffiliateRepo: affiliateservice.NewMockRepo(ctrl),
		WalletRepo:    walletservice.NewMockRepo(ctrl),
		OutcomeRepo:   settlementservice.NewMockOutcomeRepo(ctrl),
	}
	cfg := &config.Config{
		JWTSecret: "secret",
		Loyalty:   config.Loyalty{Enabled: true, MinOrder: 100, EarnRate: 0.1},
	}

	services := New(repos, cfg, Infra{
		Locker:  settlementservice.NewLocalLocker(),
		Metrics: metrics.NewSettlementMetrics(prometheus.NewRegistry()),
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.SettlementService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.CoinService)
	assert.NotNil(t, services.CouponService)
	assert.NotNil(t, services.AffiliateService)
}

func TestLoyaltyPolicy(t *testing.T) {
	policy := loyaltyPolicy(config.Loyalty{Enabled: true, MinOrder: 100, EarnRate: 0.1, MinRedeem: 50})

	assert.True(t, policy.Enabled)
	assert.Equal(t, "100.00", policy.MinOrder.StringFixed(2))
	assert.Equal(t, "0.10", policy.EarnRate.StringFixed(2))
	assert.Equal(t, int64(50), policy.MinRedeem)
}
