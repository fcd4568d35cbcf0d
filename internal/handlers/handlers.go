package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/storefront/docs"
	authhandlers "github.com/GlebRadaev/storefront/internal/handlers/auth"
	couponhandlers "github.com/GlebRadaev/storefront/internal/handlers/coupons"
	ordershandlers "github.com/GlebRadaev/storefront/internal/handlers/orders"
	wallethandlers "github.com/GlebRadaev/storefront/internal/handlers/wallet"
	"github.com/GlebRadaev/storefront/internal/service"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetCoins(w http.ResponseWriter, r *http.Request)
	GetCoinTransactions(w http.ResponseWriter, r *http.Request)
}

type CouponHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	OrderHandler  OrderHandler
	WalletHandler WalletHandler
	CouponHandler CouponHandler

	Tokens  auth.TokenValidator
	Metrics prometheus.Gatherer
}

func New(s *service.Services, tokens auth.TokenValidator, gatherer prometheus.Gatherer) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		OrderHandler:  ordershandlers.New(s.SettlementService, s.OrderService),
		WalletHandler: wallethandlers.New(s.WalletService, s.CoinService),
		CouponHandler: couponhandlers.New(s.CouponService),
		Tokens:        tokens,
		Metrics:       gatherer,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.Metrics, promhttp.HandlerOpts{}))
	}
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Tokens))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Checkout)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{number}", h.OrderHandler.GetOrder)
				r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Route("/coins", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetCoins)
				r.Get("/transactions", h.WalletHandler.GetCoinTransactions)
			})
			r.Post("/coupons/preview", h.CouponHandler.Preview)
		})
	})

	return r
}
