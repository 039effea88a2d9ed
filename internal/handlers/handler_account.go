package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chorecoin/chore_coin_app/internal/apperrors"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
	"github.com/chorecoin/chore_coin_app/internal/middleware"
	"github.com/chorecoin/chore_coin_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		ledgerService: ls,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountIndex", h.getAccount)
		accounts.GET("/:accountIndex/history", h.getHistory)
		accounts.POST("/:accountIndex/reset", h.resetAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Appends a new account named after the global default, with a zero balance and the starter chore list
// @Tags accounts
// @Produce  json
// @Success 201 {object} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create account")

	account, index, err := h.ledgerService.CreateAccount(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create account in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	metrics.AccountsCreated.Inc()
	logger.Info("Account created successfully", slog.Int("account_index", index))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(index, account))
}

// listAccounts godoc
// @Summary List all accounts
// @Description Retrieves every account in creation order; the ordinal position is the account identity
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts := h.ledgerService.ListAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ordinal
// @Description Retrieves one account's balance, chore list and history
// @Tags accounts
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountIndex} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.Int("account_index", index))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(index, account))
}

// getHistory godoc
// @Summary Get an account's history
// @Description Returns the balance-change history, oldest first
// @Tags accounts
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountIndex}/history [get]
func (h *accountHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	history, err := h.ledgerService.History(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.Int("account_index", index))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get history from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Index:   index,
		History: dto.ToHistoryEntryResponses(history),
	})
}

// resetAccount godoc
// @Summary Reset one account
// @Description Zeroes the balance and empties the history; the name and chore list survive. Irreversible.
// @Tags accounts
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to reset account"
// @Router /accounts/{accountIndex}/reset [post]
func (h *accountHandler) resetAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	logger.Info("Received request to reset account", slog.Int("account_index", index))

	account, err := h.ledgerService.ResetAccount(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for reset", slog.Int("account_index", index))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to reset account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset account"})
		}
		return
	}

	metrics.Resets.WithLabelValues("account").Inc()
	logger.Info("Account reset successfully", slog.Int("account_index", index))
	c.JSON(http.StatusOK, dto.ToAccountResponse(index, account))
}
