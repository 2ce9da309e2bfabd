package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
)

func (h *handler) processRateReq(c *gin.Context) (rateReq, error) {
	var req rateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	if sc, ok := middleware.GetScope(c); ok {
		req.ViewerID = sc.UserID
	}
	return req, nil
}
