package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chorecoin/chore_coin_app/internal/apperrors"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
	"github.com/chorecoin/chore_coin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// challengeHandler handles the staged challenge-list editing session.
// Add and remove touch the in-memory document only; the commit endpoint
// persists the accumulated edits, mirroring the detail-settings modal.
type challengeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newChallengeHandler(ls portssvc.LedgerSvcFacade) *challengeHandler {
	return &challengeHandler{
		ledgerService: ls,
	}
}

// RegisterChallengeRoutes registers routes related to challenge editing.
func RegisterChallengeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newChallengeHandler(ledgerService)

	challenges := rg.Group("/accounts/:accountIndex/challenges")
	{
		challenges.POST("", h.addChallenge)
		challenges.DELETE("/:position", h.removeChallenge)
		challenges.POST("/commit", h.commitDetailSettings)
	}
}

// addChallenge godoc
// @Summary Stage a new challenge
// @Description Appends a chore to the account's challenge list in memory; nothing is persisted until commit
// @Tags challenges
// @Accept  json
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Param   challenge body dto.AddChallengeRequest true "Challenge title"
// @Success 200 {object} dto.ChallengeListResponse
// @Failure 400 {object} map[string]string "Invalid input format or blank title"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountIndex}/challenges [post]
func (h *challengeHandler) addChallenge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	var req dto.AddChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddChallenge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	challenges, err := h.ledgerService.AddChallenge(c.Request.Context(), index, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for challenge add")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding challenge", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add challenge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ChallengeListResponse{Index: index, Challenges: challenges})
}

// removeChallenge godoc
// @Summary Stage a challenge removal
// @Description Removes the challenge at the given position in memory, shifting subsequent entries left; nothing is persisted until commit
// @Tags challenges
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Param   position path int true "Challenge position"
// @Success 200 {object} dto.ChallengeListResponse
// @Failure 400 {object} map[string]string "Invalid position"
// @Failure 404 {object} map[string]string "Account or challenge not found"
// @Router /accounts/{accountIndex}/challenges/{position} [delete]
func (h *challengeHandler) removeChallenge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		logger.Warn("Invalid challenge position param")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Challenge position must be an integer"})
		return
	}

	challenges, err := h.ledgerService.RemoveChallenge(c.Request.Context(), index, position)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account or challenge not found for removal",
				slog.Int("account_index", index),
				slog.Int("position", position))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account or challenge not found"})
		} else {
			logger.Error("Failed to remove challenge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ChallengeListResponse{Index: index, Challenges: challenges})
}

// commitDetailSettings godoc
// @Summary Commit staged challenge edits
// @Description Persists whatever challenge edits have accumulated since the editing session began
// @Tags challenges
// @Produce  json
// @Param   accountIndex path int true "Account ordinal"
// @Success 200 {object} dto.ChallengeListResponse
// @Failure 400 {object} map[string]string "Invalid ordinal"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to commit challenge edits"
// @Router /accounts/{accountIndex}/challenges/commit [post]
func (h *challengeHandler) commitDetailSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := accountIndexParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.CommitDetailSettings(c.Request.Context(), index); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for commit", slog.Int("account_index", index))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to commit challenge edits", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit challenge edits"})
		}
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), index)
	if err != nil {
		logger.Error("Failed to reload account after commit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit challenge edits"})
		return
	}

	logger.Info("Challenge edits committed", slog.Int("account_index", index))
	c.JSON(http.StatusOK, dto.ChallengeListResponse{Index: index, Challenges: account.Challenges})
}
