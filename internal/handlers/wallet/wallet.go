package wallet

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/internal/service/loyaltyservice"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.WalletBalance, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type CoinService interface {
	GetWallet(ctx context.Context, userID int) (*domain.LoyaltyWallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.CoinTransaction, error)
}

// WalletHandler serves the cash wallet and the loyalty coin wallet of the
// current user.
type WalletHandler struct {
	walletService Service
	coinService   CoinService
}

func New(walletService Service, coinService CoinService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		coinService:   coinService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the cash wallet balance that refunds are credited to.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletBalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletBalanceResponseDTO{
		Balance: balance.Balance.StringFixed(2),
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transactions
//	@Description	Get the cash wallet history of the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletTransactionResponseDTO	"Wallet history"
//	@Success		204	{object}	utils.Response						"Transactions not found"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Failure		500	{object}	utils.Response						"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.WalletTransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.WalletTransactionResponseDTO{
			Type:          string(tx.Type),
			Amount:        tx.Amount.StringFixed(2),
			ReferenceType: tx.ReferenceType,
			ReferenceID:   tx.ReferenceID,
			CreatedAt:     tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCoins godoc
//
//	@Summary		Get coin wallet
//	@Description	Retrieve the loyalty coin balance and its money value.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CoinWalletResponseDTO	"Coin balance"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/coins [get]
func (h *WalletHandler) GetCoins(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallet, err := h.coinService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CoinWalletResponseDTO{
		AvailableCoins: wallet.AvailableCoins,
		LifetimeEarned: wallet.LifetimeEarned,
		Value:          loyaltyservice.CoinsToMoney(wallet.AvailableCoins).StringFixed(2),
	})
}

// GetCoinTransactions godoc
//
//	@Summary		Get coin transactions
//	@Description	Get the loyalty coin history of the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CoinTransactionResponseDTO	"Coin history"
//	@Success		204	{object}	utils.Response					"Transactions not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/coins/transactions [get]
func (h *WalletHandler) GetCoinTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.coinService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.CoinTransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.CoinTransactionResponseDTO{
			Type:             string(tx.Type),
			Amount:           tx.Amount,
			Status:           string(tx.Status),
			ReferenceOrderID: tx.ReferenceOrderID,
			CreatedAt:        tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
