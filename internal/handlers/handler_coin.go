package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chorecoin/chore_coin_app/internal/apperrors"
	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
	"github.com/chorecoin/chore_coin_app/internal/middleware"
	"github.com/chorecoin/chore_coin_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// coinHandler handles the balance-changing flows: adjust and exchange.
type coinHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newCoinHandler(ls portssvc.LedgerSvcFacade) *coinHandler {
	return &coinHandler{
		ledgerService: ls,
	}
}

// RegisterCoinRoutes registers routes related to coin balances.
func RegisterCoinRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newCoinHandler(ledgerService)

	accounts := rg.Group("/accounts/:accountIndex")
	{
		accounts.POST("/coins", h.adjustCoin)
		accounts.GET("/exchange/quote", h.quoteExchange)
		accounts.POST("/exchange", h.confirmExchange)
	}
}

// adjustCoin godoc
// @Summary Adjust an account's coin balance
// @Description Applies a signed delta and appends one history entry; a delta that would push the balance below zero is rejected
// @Tags coins
// @Accept  json
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Param   adjustment body dto.AdjustCoinRequest true "Signed delta and action tag"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Failed to adjust coins"
// @Router /accounts/{accountIndex}/coins [post]
func (h *coinHandler) adjustCoin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	var req dto.AdjustCoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustCoin", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to adjust coins",
		slog.Int("account_index", index),
		slog.Int("amount", req.Amount),
		slog.String("action", req.Action))

	account, err := h.ledgerService.AdjustCoin(c.Request.Context(), index, req.Amount, domain.HistoryAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for adjustment")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Adjustment rejected, insufficient balance", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient coin balance"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adjusting coins", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to adjust coins in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust coins"})
		}
		return
	}

	metrics.CoinAdjustments.WithLabelValues(req.Action).Inc()
	logger.Info("Coins adjusted successfully", slog.Int("coin", account.Coin))
	c.JSON(http.StatusOK, dto.ToAccountResponse(index, account))
}

// quoteExchange godoc
// @Summary Quote an exchange
// @Description Checks the exchange precondition and returns the confirmation-prompt payload; exchanging removes the entire balance
// @Tags coins
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.ExchangeQuoteResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Exchange rate not met"
// @Router /accounts/{accountIndex}/exchange/quote [get]
func (h *coinHandler) quoteExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	coin, rate, err := h.ledgerService.QuoteExchange(c.Request.Context(), index)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for exchange quote")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrRateNotMet):
			logger.Warn("Exchange rate not met", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Coin balance has not reached the exchange rate"})
		default:
			logger.Error("Failed to quote exchange in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quote exchange"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeQuoteResponse{Index: index, Coin: coin, Rate: rate})
}

// confirmExchange godoc
// @Summary Confirm an exchange
// @Description Cashes out the account's entire balance with a single EXCHANGE history entry
// @Tags coins
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Exchange rate not met"
// @Failure 500 {object} map[string]string "Failed to exchange"
// @Router /accounts/{accountIndex}/exchange [post]
func (h *coinHandler) confirmExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	logger.Info("Received request to confirm exchange", slog.Int("account_index", index))

	account, err := h.ledgerService.ConfirmExchange(c.Request.Context(), index)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for exchange")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrRateNotMet):
			logger.Warn("Exchange rate not met", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Coin balance has not reached the exchange rate"})
		default:
			logger.Error("Failed to exchange in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange"})
		}
		return
	}

	// The cash-out delta is the full previous balance.
	if len(account.History) > 0 {
		exchanged := -account.History[len(account.History)-1].Amount
		metrics.CoinsExchanged.Add(float64(exchanged))
	}
	metrics.CoinAdjustments.WithLabelValues(string(domain.ActionExchange)).Inc()
	logger.Info("Exchange completed", slog.Int("account_index", index))
	c.JSON(http.StatusOK, dto.ToAccountResponse(index, account))
}
