package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
)

// RegisterRoutes maps the caller's account routes. All of them need a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	me := rg.Group("/me", mw.Auth())
	{
		me.GET("/favorites", h.Favorites)
		me.POST("/favorites/:laptop_id", h.ToggleFavorite)
		me.GET("/dashboard", h.Dashboard)
		me.GET("/profile", h.Profile)
		me.PUT("/profile", h.UpdateProfile)
	}
}
