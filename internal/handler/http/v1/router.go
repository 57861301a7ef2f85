package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Открытые маршруты: регистрация, вход, health-check
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
	api.GET("/system/health", h.healthCheck)

	// Все остальное требует JWT
	protected := api.Group("", JWTAuthMiddleware(h.cfg, h.logger))

	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.POST("/:id/close", h.closeIncident)
		// Назначение ресурсов идет через workflow, поддерживающий обе стороны связи
		incidents.POST("/:id/resources/:resourceId", h.assignResource)
		incidents.DELETE("/:id/resources/:resourceId", h.unassignResource)
	}

	resources := protected.Group("/resources")
	{
		resources.POST("", h.createResource)
		resources.GET("", h.listResources)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
		resources.DELETE("/:id", h.deleteResource)
		resources.POST("/:id/release", h.releaseResource)
		resources.POST("/:id/maintenance", h.markMaintenance)
		resources.POST("/:id/maintenance/complete", h.completeMaintenance)
	}

	// Сводка для дашборда и генератора отчетов
	protected.GET("/reports/summary", h.getDashboardSummary)
}
