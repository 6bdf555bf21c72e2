package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/mdewolf/cfadmin/internal/store"
)

// normalizeAppearanceMode collapses anything unknown to "auto".
func normalizeAppearanceMode(mode string) string {
	switch mode {
	case "light", "dark":
		return mode
	default:
		return "auto"
	}
}

// GetAppearance godoc
// @Summary Appearance preference
// @Tags settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.AppearanceResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /settings/appearance [get]
func (h *Handler) GetAppearance(c *gin.Context) {
	mode, _, err := h.store.GetSecret(store.KeyAppearanceMode)
	if err != nil {
		h.logger.Error("failed to read appearance mode", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read settings"})
		return
	}
	c.JSON(http.StatusOK, models.AppearanceResponse{Mode: normalizeAppearanceMode(mode)})
}

// SetAppearance godoc
// @Summary Set appearance preference
// @Description Stores "light", "dark" or "auto"; unknown values become "auto"
// @Tags settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param appearance body models.SetAppearanceRequest true "Preference"
// @Success 200 {object} models.AppearanceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /settings/appearance [put]
func (h *Handler) SetAppearance(c *gin.Context) {
	var req models.SetAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	mode := normalizeAppearanceMode(req.Mode)
	if err := h.store.SetSecret(store.KeyAppearanceMode, mode); err != nil {
		h.logger.Error("failed to store appearance mode", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store settings"})
		return
	}
	c.JSON(http.StatusOK, models.AppearanceResponse{Mode: mode})
}
