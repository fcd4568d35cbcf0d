package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
)

type CheckoutItemDTO struct {
	ProductID string          `json:"product_id" example:"sku-42"`
	Quantity  int             `json:"quantity" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"250.00"`
}

type ShippingDTO struct {
	Name       string `json:"name" example:"Asha Rao"`
	Phone      string `json:"phone" example:"9876543210"`
	Address    string `json:"address" example:"12 MG Road"`
	City       string `json:"city,omitempty" example:"Pune"`
	PostalCode string `json:"postal_code,omitempty" example:"411001"`
}

type CheckoutRequestDTO struct {
	Items            []CheckoutItemDTO `json:"items"`
	Shipping         ShippingDTO       `json:"shipping"`
	PaymentMethod    string            `json:"payment_method" example:"online"`
	CouponCode       string            `json:"coupon_code,omitempty" example:"WELCOME10"`
	CoinsToRedeem    int64             `json:"coins_to_redeem,omitempty" example:"200"`
	IdempotencyKey   string            `json:"idempotency_key,omitempty" example:"3f1c6a52-8d7e-4b0a-9c61-2b5d0e7f4a19"`
	AffiliateClickID int64             `json:"affiliate_click_id,omitempty" example:"0"`
}

type OrderItemResponseDTO struct {
	ProductID string `json:"product_id" example:"sku-42"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice string `json:"unit_price" example:"250.00"`
	LineTotal string `json:"line_total" example:"500.00"`
}

type OrderResponseDTO struct {
	ID             int                    `json:"id" example:"10"`
	Number         string                 `json:"number" example:"123456789031"`
	Status         string                 `json:"status" example:"pending"`
	Subtotal       string                 `json:"subtotal" example:"1000.00"`
	CouponCode     string                 `json:"coupon_code,omitempty" example:"WELCOME10"`
	CouponDiscount string                 `json:"coupon_discount" example:"50.00"`
	CoinsRedeemed  int64                  `json:"coins_redeemed" example:"200"`
	CoinsDiscount  string                 `json:"coins_discount" example:"20.00"`
	TotalAmount    string                 `json:"total_amount" example:"930.00"`
	PaymentMethod  string                 `json:"payment_method" example:"Online Payment"`
	Shipping       ShippingDTO            `json:"shipping"`
	Items          []OrderItemResponseDTO `json:"items,omitempty"`
	CreatedAt      string                 `json:"created_at" example:"2024-12-09T16:09:57+05:30"`
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:             o.ID,
		Number:         o.OrderNumber,
		Status:         string(o.Status),
		Subtotal:       o.Subtotal.StringFixed(2),
		CouponCode:     o.CouponCode,
		CouponDiscount: o.CouponDiscount.StringFixed(2),
		CoinsRedeemed:  o.CoinsRedeemed,
		CoinsDiscount:  o.CoinsDiscount.StringFixed(2),
		TotalAmount:    o.TotalAmount.StringFixed(2),
		PaymentMethod:  o.PaymentMethod,
		Shipping: ShippingDTO{
			Name:       o.Shipping.Name,
			Phone:      o.Shipping.Phone,
			Address:    o.Shipping.Address,
			City:       o.Shipping.City,
			PostalCode: o.Shipping.PostalCode,
		},
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponseDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}
	return resp
}

type CancelOrderResponseDTO struct {
	Order    OrderResponseDTO `json:"order"`
	Refunded bool             `json:"refunded"`
	Warning  string           `json:"warning,omitempty" example:"order cancelled but refund failed, contact support"`
}
