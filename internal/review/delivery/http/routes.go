package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
)

// RegisterRoutes maps review routes. Reading is public; rating needs a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/laptops/:slug/reviews", mw.OptionalAuth(), h.List)
	rg.POST("/laptops/:slug/reviews", mw.Auth(), h.Rate)
	rg.GET("/me/reviews", mw.Auth(), h.ListMine)
}
