package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRecordReq(c *gin.Context) (recordReq, error) {
	var req recordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	return req, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	return req, nil
}

func (h *handler) processCreateAlertReq(c *gin.Context) (createAlertReq, error) {
	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
