package http

import (
	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/middleware"
	"laptopxplorer/pkg/response"
)

// ToggleFavorite godoc
// @Summary     Toggle a favorite
// @Description Adds the laptop to the caller's favorites, or removes it when already there.
// @Tags        Account
// @Produce     json
// @Security    BearerAuth
// @Param       laptop_id path string true "Laptop ID"
// @Success     200 {object} toggleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/me/favorites/{laptop_id} [POST]
func (h *handler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	laptopID := c.Param("laptop_id")
	favorited, err := h.uc.ToggleFavorite(ctx, sc, laptopID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleFavorite: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, toggleResp{LaptopID: laptopID, Favorited: favorited})
}

// Favorites godoc
// @Summary     List favorites
// @Tags        Account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  favoriteResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/favorites [GET]
func (h *handler) Favorites(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	favs, err := h.uc.Favorites(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Favorites: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFavoriteResps(favs))
}

// Dashboard godoc
// @Summary     Account dashboard
// @Tags        Account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDashboardResp(out))
}

// Profile godoc
// @Summary     Get the caller's profile
// @Tags        Account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	p, err := h.uc.Profile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(p))
}

// UpdateProfile godoc
// @Summary     Update the caller's profile
// @Description Only the fields present in the body change.
// @Tags        Account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(p))
}
