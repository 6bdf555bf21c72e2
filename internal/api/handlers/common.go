package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/mdewolf/cfadmin/internal/cloudflare"
)

func httpClientWithTimeout(d time.Duration) *http.Client {
	return &http.Client{Timeout: d}
}

// requireClient fetches the live client or answers 400 when no token has
// been configured yet.
func (h *Handler) requireClient(c *gin.Context) (*cloudflare.Client, bool) {
	client := h.getClient()
	if client == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no API token configured"})
		return nil, false
	}
	return client, true
}

// writeCloudflareError maps the client error taxonomy onto HTTP statuses:
// an error the API itself reported is the caller's problem (422), while
// transport, decode and missing-result failures are upstream trouble (502).
// The previously loaded state on the caller's side stays valid either way.
func (h *Handler) writeCloudflareError(c *gin.Context, operation string, err error) {
	h.logger.Error("cloudflare operation failed", "operation", operation, "err", err)

	var apiErr *cloudflare.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
}
