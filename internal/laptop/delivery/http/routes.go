package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
)

// RegisterRoutes maps the public catalog routes. None require a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	laptops := rg.Group("/laptops")
	{
		laptops.GET("", h.List)
		laptops.GET("/autocomplete", h.Autocomplete)
		laptops.GET("/compare", h.Compare)
		laptops.GET("/:slug", h.Detail)
	}

	brands := rg.Group("/brands")
	{
		brands.GET("", h.Brands)
		brands.GET("/:slug", h.BrandDetail)
	}

	rg.GET("/categories", h.Categories)
	rg.GET("/home", h.Home)
}
