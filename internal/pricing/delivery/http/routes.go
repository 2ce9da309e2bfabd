package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/internal/model"
)

// RegisterRoutes maps price history and alert routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/laptops/:slug/prices", h.History)
	rg.GET("/laptops/:slug/prices/trend", h.Trend)
	rg.POST("/laptops/:slug/prices", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.Record)

	alerts := rg.Group("/me/alerts", mw.Auth())
	{
		alerts.GET("", h.ListAlerts)
		alerts.POST("", h.CreateAlert)
		alerts.DELETE("/:id", h.DeleteAlert)
	}
}
