package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/mdewolf/cfadmin/internal/metrics"
)

// ListZones godoc
// @Summary List zones
// @Description Returns all zones visible to the configured token, fully paginated
// @Tags zones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ZoneListResponse
// @Failure 400 {object} models.ErrorResponse "No token configured"
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	client, ok := h.requireClient(c)
	if !ok {
		return
	}

	zones, err := client.ListZones(c.Request.Context())
	metrics.ObserveCloudflare("list_zones", err)
	if err != nil {
		h.writeCloudflareError(c, "list_zones", err)
		return
	}

	resp := models.ZoneListResponse{
		Zones: make([]models.Zone, 0, len(zones)),
		Count: len(zones),
	}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, models.Zone{
			ID:          z.ID,
			Name:        z.Name,
			Status:      z.Status,
			AccountID:   z.Account.ID,
			AccountName: z.Account.Name,
		})
	}

	c.JSON(http.StatusOK, resp)
}
