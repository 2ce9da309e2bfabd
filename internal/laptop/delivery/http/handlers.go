package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/laptop"
	"laptopxplorer/pkg/response"
)

// List godoc
// @Summary     List laptops
// @Description Faceted catalog listing. Multi-valued filters may be repeated (brand=a&brand=b).
// @Description Rejected filter values are reported in "errors" while the rest of the query still applies.
// @Tags        Laptops
// @Produce     json
// @Param       q           query string false "Free-text search"
// @Param       brand       query []string false "Brand ids" collectionFormat(multi)
// @Param       category    query []string false "Category ids" collectionFormat(multi)
// @Param       min_price   query number false "Minimum price"
// @Param       max_price   query number false "Maximum price"
// @Param       ram         query []int false "RAM sizes in GB" collectionFormat(multi)
// @Param       storage     query []int false "Storage sizes in GB" collectionFormat(multi)
// @Param       screen      query []string false "Screen buckets (13, 14, 15, 16, 17)" collectionFormat(multi)
// @Param       weight      query string false "ultraportable, standard or heavy"
// @Param       min_battery query number false "Minimum battery life in hours"
// @Param       graphics    query []string false "Graphics types" collectionFormat(multi)
// @Param       os          query []string false "Operating systems" collectionFormat(multi)
// @Param       sort        query string false "e.g. price asc, -price, name_desc"
// @Param       page        query int false "Page number (default: 1)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/laptops [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, warnings := h.processListReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithWarnings(c, newListResp(output), warnings)
}

// Autocomplete godoc
// @Summary     Search suggestions
// @Description Returns laptops matching q. Queries shorter than two characters return nothing.
// @Tags        Laptops
// @Produce     json
// @Param       q query string true "Search text"
// @Success     200 {array}  suggestionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/laptops/autocomplete [GET]
func (h *handler) Autocomplete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAutocompleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	suggestions, err := h.uc.Autocomplete(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Autocomplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAutocompleteResp(suggestions))
}

// Compare godoc
// @Summary     Compare laptops
// @Description Returns 2 to 4 laptops side by side, in request order.
// @Tags        Laptops
// @Produce     json
// @Param       ids query []string true "Laptop ids (repeated or comma-separated)" collectionFormat(multi)
// @Success     200 {object} compareResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/laptops/compare [GET]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompareReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	laptops, err := h.uc.Compare(ctx, req.IDs)
	if err != nil {
		h.l.Errorf(ctx, "uc.Compare: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompareResp(laptops))
}

// Detail godoc
// @Summary     Get laptop detail
// @Description Returns the spec sheet, rating summary and related laptops. Counts a view.
// @Tags        Laptops
// @Produce     json
// @Param       slug path string true "Laptop slug"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/laptops/{slug} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("slug"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Brands godoc
// @Summary     List brands
// @Tags        Brands
// @Produce     json
// @Success     200 {array}  brandResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/brands [GET]
func (h *handler) Brands(c *gin.Context) {
	ctx := c.Request.Context()

	brands, err := h.uc.Brands(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Brands: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBrandResps(brands))
}

// BrandDetail godoc
// @Summary     Get brand with its laptops
// @Description Accepts the same query parameters as the laptop listing; the brand filter is fixed.
// @Tags        Brands
// @Produce     json
// @Param       slug path string true "Brand slug"
// @Success     200 {object} brandDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/brands/{slug} [GET]
func (h *handler) BrandDetail(c *gin.Context) {
	ctx := c.Request.Context()

	req, warnings := h.processListReq(c)

	output, err := h.uc.BrandDetail(ctx, laptop.BrandDetailInput{Slug: c.Param("slug"), Selection: req.Selection})
	if err != nil {
		h.l.Errorf(ctx, "uc.BrandDetail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithWarnings(c, h.newBrandDetailResp(output), warnings)
}

// Categories godoc
// @Summary     List categories
// @Tags        Categories
// @Produce     json
// @Success     200 {array}  categoryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResps(categories))
}

// Home godoc
// @Summary     Landing page content
// @Tags        Laptops
// @Produce     json
// @Success     200 {object} homeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/home [GET]
func (h *handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Home(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Home: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHomeResp(output))
}
