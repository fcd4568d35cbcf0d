package coupons

//go:generate mockgen -source=coupons.go -destination=mock_coupons.go -package=coupons

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/internal/service/couponservice"
	"github.com/GlebRadaev/storefront/pkg/utils"
	"github.com/GlebRadaev/storefront/pkg/validate"
)

type Service interface {
	Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*domain.AppliedCoupon, error)
}

type CouponHandler struct {
	couponService Service
}

func New(couponService Service) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

func isRejection(err error) bool {
	return errors.Is(err, couponservice.ErrCouponInactive) ||
		errors.Is(err, couponservice.ErrCouponExpired) ||
		errors.Is(err, couponservice.ErrCouponMinOrder) ||
		errors.Is(err, couponservice.ErrCouponAlreadyConsumed)
}

// Preview godoc
//
//	@Summary		Preview a coupon
//	@Description	Check a coupon against a cart subtotal and report the discount it would give. The coupon is not consumed.
//	@Tags			Coupons
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CouponPreviewRequestDTO	true	"Coupon code and cart subtotal"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CouponPreviewResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Coupon not found"
//	@Failure		422	{object}	utils.Response	"Coupon can't be applied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/coupons/preview [post]
func (h *CouponHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.CouponPreviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	fields := validate.Struct(req)
	if req.Subtotal.IsNegative() {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["subtotal"] = "must not be negative"
	}
	if fields != nil {
		utils.RespondWithFields(w, http.StatusBadRequest, "Invalid request body", fields)
		return
	}

	coupon, err := h.couponService.Preview(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		switch {
		case errors.Is(err, couponservice.ErrCouponNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case isRejection(err):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CouponPreviewResponseDTO{
		Code:           coupon.Code,
		DiscountAmount: coupon.DiscountAmount.StringFixed(2),
		BonusCoins:     coupon.BonusCoins,
	})
}
