package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mdewolf/cfadmin/internal/api/handlers"
	"github.com/mdewolf/cfadmin/internal/api/middleware"
	"github.com/mdewolf/cfadmin/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mdewolf/cfadmin/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Prometheus metrics and Swagger UI sit outside the key-protected group.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg == nil || cfg.API.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/token", h.GetToken)
	api.PUT("/token", h.SetToken)
	api.POST("/token/verify", h.VerifyToken)
	api.DELETE("/token", h.DeleteToken)

	api.GET("/zones", h.ListZones)
	api.GET("/zones/:zoneID/records", h.ListRecords)
	api.POST("/zones/:zoneID/records", h.CreateRecord)
	api.PUT("/zones/:zoneID/records/:recordID", h.UpdateRecord)
	api.DELETE("/zones/:zoneID/records/:recordID", h.DeleteRecord)

	api.GET("/settings/appearance", h.GetAppearance)
	api.PUT("/settings/appearance", h.SetAppearance)
}
