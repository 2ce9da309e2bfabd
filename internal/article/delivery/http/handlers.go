package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/pkg/response"
)

// List godoc
// @Summary     List published articles
// @Tags        Articles
// @Produce     json
// @Param       page query int false "Page number (default: 1)"
// @Success     200 {object} listResp
// @Router      /api/v1/articles [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(out))
}

// Detail godoc
// @Summary     Get a published article
// @Tags        Articles
// @Produce     json
// @Param       slug path string true "Article slug"
// @Success     200 {object} articleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/articles/{slug} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.uc.Detail(ctx, c.Param("slug"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newArticleResp(a))
}

// Create godoc
// @Summary     Create an article
// @Description Admin only. The slug defaults to the title and read_time to an estimate from the content.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Article"
// @Success     201 {object} articleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/articles [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(newArticleResp(a)))
}
