package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/pkg/response"
)

// History godoc
// @Summary     Price history of a laptop
// @Description Records newest first, each with the change from the previous record of the same retailer.
// @Tags        Pricing
// @Produce     json
// @Param       slug     path  string true  "Laptop slug"
// @Param       retailer query string false "Only this retailer" Enums(amazon,bestbuy,newegg,walmart,direct,other)
// @Success     200 {array}  historyEntryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/prices [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(entries))
}

// Trend godoc
// @Summary     Price trend of a laptop
// @Tags        Pricing
// @Produce     json
// @Param       slug path string true "Laptop slug"
// @Success     200 {object} trendResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/prices/trend [GET]
func (h *handler) Trend(c *gin.Context) {
	ctx := c.Request.Context()

	trend, err := h.uc.Trend(ctx, c.Param("slug"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Trend: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTrendResp(trend))
}

// Record godoc
// @Summary     Record a price
// @Description Admin only. An in-stock price becomes the laptop's current price and triggers matching alerts.
// @Tags        Pricing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       slug path string    true "Laptop slug"
// @Param       body body recordReq true "Observed price"
// @Success     201 {object} recordResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/{slug}/prices [POST]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRecordReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.Record(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Record: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(newRecordResp(rec)))
}

// ListAlerts godoc
// @Summary     List price alerts
// @Tags        Pricing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  alertResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/alerts [GET]
func (h *handler) ListAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	alerts, err := h.uc.ListAlerts(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAlerts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAlertResps(alerts))
}

// CreateAlert godoc
// @Summary     Create a price alert
// @Description An empty retailer matches any retailer.
// @Tags        Pricing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createAlertReq true "Alert"
// @Success     201 {object} alertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/me/alerts [POST]
func (h *handler) CreateAlert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateAlertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.CreateAlert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateAlert: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.NewOKResp(newAlertResp(a)))
}

// DeleteAlert godoc
// @Summary     Delete a price alert
// @Tags        Pricing
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Alert ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/me/alerts/{id} [DELETE]
func (h *handler) DeleteAlert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteAlert(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteAlert: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
