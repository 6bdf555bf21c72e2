package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/mdewolf/cfadmin/internal/metrics"
	"github.com/mdewolf/cfadmin/internal/store"
)

// GetToken godoc
// @Summary Token status
// @Description Reports whether a Cloudflare API token is configured
// @Tags token
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TokenStatusResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /token [get]
func (h *Handler) GetToken(c *gin.Context) {
	_, ok, err := h.store.GetSecret(store.KeyAPIToken)
	if err != nil {
		h.logger.Error("failed to read token from store", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read token"})
		return
	}
	c.JSON(http.StatusOK, models.TokenStatusResponse{Configured: ok})
}

// SetToken godoc
// @Summary Set API token
// @Description Verifies a Cloudflare API token and stores it on success
// @Tags token
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param token body models.SetTokenRequest true "Token to verify and store"
// @Success 200 {object} models.TokenVerifyResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse "Token is not active"
// @Failure 502 {object} models.ErrorResponse
// @Router /token [put]
func (h *Handler) SetToken(c *gin.Context) {
	var req models.SetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Token cannot be empty"})
		return
	}

	// Verify before anything is persisted; a bad token leaves the old
	// one in place.
	client := h.newClient(req.Token)
	active, err := client.VerifyToken(c.Request.Context())
	metrics.ObserveCloudflare("verify_token", err)
	if err != nil {
		h.writeCloudflareError(c, "verify_token", err)
		return
	}
	if !active {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "token is not active"})
		return
	}

	if err := h.store.SetSecret(store.KeyAPIToken, req.Token); err != nil {
		h.logger.Error("failed to persist token", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to persist token"})
		return
	}
	h.setClient(client)

	h.logger.Info("api token updated")
	c.JSON(http.StatusOK, models.TokenVerifyResponse{Active: true})
}

// VerifyToken godoc
// @Summary Verify stored token
// @Description Re-verifies the stored token against Cloudflare
// @Tags token
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TokenVerifyResponse
// @Failure 400 {object} models.ErrorResponse "No token configured"
// @Failure 502 {object} models.ErrorResponse
// @Router /token/verify [post]
func (h *Handler) VerifyToken(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	active, err := client.VerifyToken(c.Request.Context())
	metrics.ObserveCloudflare("verify_token", err)
	if err != nil {
		h.writeCloudflareError(c, "verify_token", err)
		return
	}
	c.JSON(http.StatusOK, models.TokenVerifyResponse{Active: active})
}

// DeleteToken godoc
// @Summary Forget API token
// @Description Removes the stored token; deleting an absent token succeeds
// @Tags token
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.StatusResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /token [delete]
func (h *Handler) DeleteToken(c *gin.Context) {
	if err := h.store.DeleteSecret(store.KeyAPIToken); err != nil {
		h.logger.Error("failed to delete token", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete token"})
		return
	}
	h.setClient(nil)

	h.logger.Info("api token cleared")
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
