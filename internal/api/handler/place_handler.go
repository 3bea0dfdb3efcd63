package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// PlaceHandler serves merchants with their locations and menus.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// All handles POST /customer/places/all.
//
// @Summary      List all places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  merchantsResponse
// @Router       /customer/places/all [post]
func (h *PlaceHandler) All(c echo.Context) error {
	merchants, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merchantsResponse{Merchants: merchants})
}

// Radius handles POST /customer/places/radius.
//
// @Summary      List places within a radius, nearest first
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      radiusRequest  true  "Center and radius"
// @Success      200   {object}  merchantsResponse
// @Failure      422   {object}  errorResponse
// @Router       /customer/places/radius [post]
func (h *PlaceHandler) Radius(c echo.Context) error {
	var req radiusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	merchants, err := h.service.InRadius(c.Request().Context(), ports.RadiusQuery{
		Center:   domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		RadiusKm: req.RadiusKm,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merchantsResponse{Merchants: merchants})
}

// Info handles POST /customer/places/info/:merchant_id.
//
// @Summary      Place details
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        merchant_id  path      string  true  "Merchant id"
// @Success      200          {object}  merchantResponse
// @Failure      404          {object}  errorResponse
// @Router       /customer/places/info/{merchant_id} [post]
func (h *PlaceHandler) Info(c echo.Context) error {
	merchant, err := h.service.Info(c.Request().Context(), c.Param("merchant_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merchantResponse{Merchant: merchant})
}

// Menu handles POST /customer/places/menu/:merchant_id.
//
// @Summary      Place menu
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        merchant_id  path      string  true  "Merchant id"
// @Success      200          {object}  menuResponse
// @Failure      404          {object}  errorResponse
// @Router       /customer/places/menu/{merchant_id} [post]
func (h *PlaceHandler) Menu(c echo.Context) error {
	categories, err := h.service.Menu(c.Request().Context(), c.Param("merchant_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuResponse{MenuCategories: categories})
}
