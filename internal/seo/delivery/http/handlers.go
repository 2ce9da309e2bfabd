package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopxplorer/pkg/response"
)

// Meta godoc
// @Summary     SEO metadata of a laptop
// @Description Title, description, keywords, canonical URL, Open Graph and Twitter tags and schema.org Product JSON-LD.
// @Tags        SEO
// @Produce     json
// @Param       slug path string true "Laptop slug"
// @Success     200 {object} metaResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/seo [GET]
func (h *handler) Meta(c *gin.Context) {
	ctx := c.Request.Context()

	meta, err := h.uc.Meta(ctx, c.Param("slug"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Meta: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newMetaResp(meta))
}

// Sitemap godoc
// @Summary     sitemap.xml
// @Tags        SEO
// @Produce     xml
// @Success     200 {string} string "urlset document"
// @Router      /sitemap.xml [GET]
func (h *handler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()

	set, err := h.uc.Sitemap(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sitemap: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	body, err := encodeSitemap(set)
	if err != nil {
		h.l.Errorf(ctx, "encodeSitemap: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots godoc
// @Summary     robots.txt
// @Tags        SEO
// @Produce     plain
// @Success     200 {string} string "robots rules"
// @Router      /robots.txt [GET]
func (h *handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.uc.Robots(c.Request.Context()))
}
