package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/internal/model"
)

// RegisterRoutes maps article routes. Reading is public; publishing needs an
// admin token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:slug", h.Detail)
		articles.POST("", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.Create)
	}
}
