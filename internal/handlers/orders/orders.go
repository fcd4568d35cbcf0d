package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/internal/service/orderservice"
	"github.com/GlebRadaev/storefront/internal/service/settlementservice"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
	"github.com/GlebRadaev/storefront/pkg/validate"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Service interface {
	PlaceOrder(ctx context.Context, userID int, req settlementservice.CheckoutRequest) (*settlementservice.PlaceResult, error)
	CancelOrder(ctx context.Context, userID, orderID int) (*settlementservice.CancelResult, error)
}

type OrderReader interface {
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
	GetByNumber(ctx context.Context, userID int, orderNumber string) (*domain.Order, error)
}

type OrderHandler struct {
	settlementService Service
	orderService      OrderReader
}

func New(settlementService Service, orderService OrderReader) *OrderHandler {
	return &OrderHandler{
		settlementService: settlementService,
		orderService:      orderService,
	}
}

func toCheckout(req dto.CheckoutRequestDTO, headerKey string) settlementservice.CheckoutRequest {
	items := make([]settlementservice.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, settlementservice.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	key := req.IdempotencyKey
	if headerKey != "" {
		key = headerKey
	}
	return settlementservice.CheckoutRequest{
		Items: items,
		Shipping: settlementservice.Shipping{
			Name:       req.Shipping.Name,
			Phone:      req.Shipping.Phone,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
		},
		PaymentMethod:    req.PaymentMethod,
		CouponCode:       req.CouponCode,
		CoinsToRedeem:    req.CoinsToRedeem,
		IdempotencyKey:   key,
		AffiliateClickID: req.AffiliateClickID,
	}
}

func isRedemptionRejection(err error) bool {
	return errors.Is(err, loyaltyservice.ErrInsufficientCoins) ||
		errors.Is(err, loyaltyservice.ErrLoyaltyDisabled) ||
		errors.Is(err, loyaltyservice.ErrBelowMinRedeem) ||
		errors.Is(err, loyaltyservice.ErrInvalidCoins) ||
		errors.Is(err, loyaltyservice.ErrAlreadyRedeemed)
}

// Checkout godoc
//
//	@Summary		Place an order
//	@Description	Check out a cart. Repeating the request with the same idempotency key returns the order created first.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					false	"Checkout idempotency key (UUID), overrides the body field"
//	@Param			request			body		dto.CheckoutRequestDTO	true	"Checkout request"
//	@Security		BearerAuth
//	@Success		201				{object}	dto.OrderResponseDTO	"Order placed"
//	@Success		200				{object}	dto.OrderResponseDTO	"Order already placed with this key"
//	@Failure		400				{object}	utils.Response			"Malformed request body"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		402				{object}	utils.Response			"Coin redemption failed"
//	@Failure		409				{object}	utils.Response			"Checkout with this key is in progress"
//	@Failure		422				{object}	utils.Response			"Validation failed"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkout := toCheckout(req, strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)))
	res, err := h.settlementService.PlaceOrder(r.Context(), userID, checkout)
	if err != nil {
		var verr *settlementservice.ValidationError
		var rerr *settlementservice.RedemptionError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithFields(w, http.StatusUnprocessableEntity, "Validation failed", verr.Fields)
		case errors.As(err, &rerr) && isRedemptionRejection(err):
			utils.RespondWithError(w, http.StatusPaymentRequired, rerr.Error())
		case errors.Is(err, settlementservice.ErrCheckoutInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	code := http.StatusCreated
	if res.Replayed {
		code = http.StatusOK
	}
	utils.RespondWithJSON(w, code, dto.NewOrderResponse(res.Order))
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Description	Cancel a pending or processing order. Prepaid orders are refunded to the wallet; a failed refund is reported as a warning.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CancelOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order can't be cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || orderID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	res, err := h.settlementService.CancelOrder(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrInvalidTransition), errors.Is(err, orderservice.ErrStatusChanged):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CancelOrderResponseDTO{
		Order:    dto.NewOrderResponse(res.Order),
		Refunded: res.Refunded,
		Warning:  res.Warning,
	})
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders of the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get an order by number
//	@Tags			Orders
//	@Produce		json
//	@Param			number	path	string	true	"Order number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Invalid order number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{number} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	number := chi.URLParam(r, "number")
	if !validate.IsLuhn(number) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}

	order, err := h.orderService.GetByNumber(r.Context(), userID, number)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}
