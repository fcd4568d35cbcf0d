package repo

import (
	"github.com/GlebRadaev/storefront/internal/pg"
	affiliaterepo "github.com/GlebRadaev/storefront/internal/repo/affiliate-repo"
	coinrepo "github.com/GlebRadaev/storefront/internal/repo/coin-repo"
	couponrepo "github.com/GlebRadaev/storefront/internal/repo/coupon-repo"
	orderrepo "github.com/GlebRadaev/storefront/internal/repo/order-repo"
	outcomerepo "github.com/GlebRadaev/storefront/internal/repo/outcome-repo"
	userrepo "github.com/GlebRadaev/storefront/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/storefront/internal/repo/wallet-repo"
	"github.com/GlebRadaev/storefront/internal/service/affiliateservice"
	"github.com/GlebRadaev/storefront/internal/service/authservice"
	"github.com/GlebRadaev/storefront/internal/service/couponservice"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/internal/service/orderservice"
	"github.com/GlebRadaev/storefront/internal/service/settlementservice"
	"github.com/GlebRadaev/storefront/internal/service/walletservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	OrderRepo     orderservice.Repo
	CouponRepo    couponservice.Repo
	CoinRepo      loyaltyservice.Repo
	AffiliateRepo affiliateservice.Repo
	WalletRepo    walletservice.Repo
	OutcomeRepo   settlementservice.OutcomeRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		OrderRepo:     orderrepo.New(conn, txManager),
		CouponRepo:    couponrepo.New(conn),
		CoinRepo:      coinrepo.New(conn, txManager),
		AffiliateRepo: affiliaterepo.New(conn),
		WalletRepo:    walletrepo.New(conn, txManager),
		OutcomeRepo:   outcomerepo.New(conn),
	}
}
