package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/pkg/response"
)

// List godoc
// @Summary     List reviews of a laptop
// @Tags        Reviews
// @Produce     json
// @Param       slug      path  string true  "Laptop slug"
// @Param       page      query int    false "Page number (default: 1)"
// @Param       page_size query int    false "Page size (default: 10, max: 50)"
// @Description Signed-in callers also get their own review as "mine".
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/reviews [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Rate godoc
// @Summary     Rate a laptop
// @Description Creates the caller's review or replaces the existing one.
// @Tags        Reviews
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       slug path string  true "Laptop slug"
// @Param       body body rateReq true "Score (1-5) and optional comment"
// @Success     200 {object} reviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/reviews [POST]
func (h *handler) Rate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rv, err := h.uc.Rate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Rate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResp(rv))
}

// ListMine godoc
// @Summary     List the caller's reviews
// @Tags        Reviews
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  reviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/reviews [GET]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	reviews, err := h.uc.ListByUser(ctx, sc, 0)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResps(reviews))
}
