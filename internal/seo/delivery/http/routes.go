package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the crawler files at the site root and the metadata
// endpoint under the API group.
func RegisterRoutes(root gin.IRoutes, rg *gin.RouterGroup, h *handler) {
	root.GET("/sitemap.xml", h.Sitemap)
	root.GET("/robots.txt", h.Robots)

	rg.GET("/laptops/:slug/seo", h.Meta)
}
