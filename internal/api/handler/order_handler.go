package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /customer/orders.
//
// @Summary      Orders of the current customer
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Router       /customer/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	customer := MustCustomer(c)

	orders, err := h.service.ListForCustomer(c.Request().Context(), customer.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}

// Create handles POST /customer/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order"
// @Success      201   {object}  orderResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /customer/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	customer := MustCustomer(c)

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lines := make([]ports.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = ports.OrderLineInput{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		CustomerID: customer.ID,
		MerchantID: req.MerchantID,
		Lines:      lines,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderResponse{Order: order})
}
