package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
	"github.com/chorecoin/chore_coin_app/internal/middleware"
	"github.com/chorecoin/chore_coin_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles global settings and the reset-all action.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade, ls portssvc.LedgerSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
		ledgerService:   ls,
	}
}

// RegisterSettingsRoutes registers the settings and reset-all routes.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newSettingsHandler(settingsService, ledgerService)

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
	rg.POST("/reset", h.resetAllData)
}

// getSettings godoc
// @Summary Get global settings
// @Description Returns the default new-account name and the exchange rate
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.GlobalSettingsResponse
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	settings := h.settingsService.GetGlobalSettings(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToGlobalSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update global settings
// @Description Applies whichever fields are valid; a blank name or a rate below 1 keeps the previous value
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateGlobalSettingsRequest true "Fields to update"
// @Success 200 {object} dto.GlobalSettingsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateGlobalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateGlobalSettings(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to update settings in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	logger.Info("Settings updated successfully")
	c.JSON(http.StatusOK, dto.ToGlobalSettingsResponse(settings))
}

// resetAllData godoc
// @Summary Reset all data
// @Description Erases every account and all settings, returning the tracker to first-run state. Irreversible.
// @Tags settings
// @Produce  json
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to reset data"
// @Router /reset [post]
func (h *settingsHandler) resetAllData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reset all data")

	if err := h.ledgerService.ResetAllData(c.Request.Context()); err != nil {
		logger.Error("Failed to reset all data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	metrics.Resets.WithLabelValues("all").Inc()
	logger.Info("All data reset successfully")
	c.Status(http.StatusNoContent)
}
