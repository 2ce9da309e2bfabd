package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"laptopxplorer/pkg/catalog"
	pkgErrors "laptopxplorer/pkg/errors"
)

// processListReq parses the listing query. Rejected fields come back as
// warnings; the selection still carries every accepted field.
func (h *handler) processListReq(c *gin.Context) (listReq, pkgErrors.ValidationErrors) {
	sel, warnings := catalog.ParseSelection(c.Request.URL.Query())
	if len(warnings) > 0 {
		h.l.Warnf(c.Request.Context(), "laptop.http.processListReq: %v", warnings)
	}
	return listReq{Selection: sel}, warnings
}

// processAutocompleteReq binds the autocomplete query parameters.
func (h *handler) processAutocompleteReq(c *gin.Context) (autocompleteReq, error) {
	var req autocompleteReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Query = strings.TrimSpace(req.Query)
	return req, nil
}

// processCompareReq accepts ids as a repeated parameter, a comma-separated
// list, or both.
func (h *handler) processCompareReq(c *gin.Context) (compareReq, error) {
	var req compareReq
	for _, raw := range c.QueryArray("ids") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.IDs = append(req.IDs, id)
			}
		}
	}
	return req, req.validate()
}
