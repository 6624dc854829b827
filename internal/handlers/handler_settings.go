package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvc
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc) {
	h := &settingsHandler{settingsService: settingsService}
	rg.GET("/settings", h.getSettings)
}

// getSettings godoc
// @Summary Show the accounting settings snapshot
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.Resolve(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load accounting settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
