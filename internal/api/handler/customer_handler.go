package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

type CustomerHandler struct {
	auth   ports.Authenticator
	issuer ports.TokenIssuer
}

func NewCustomerHandler(auth ports.Authenticator, issuer ports.TokenIssuer) *CustomerHandler {
	return &CustomerHandler{auth: auth, issuer: issuer}
}

// Login resolves a login/password pair and returns the customer with its
// access token. A token is issued on first login if none exists yet.
//
// @Summary      Customer login
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  customerResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /customer/login [post]
func (h *CustomerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	customer, err := h.auth.Resolve(ctx, domain.ByAPIKey{Login: req.Login, Secret: req.Password})
	if err != nil {
		return err
	}

	if _, err := h.issuer.EnsureIssued(ctx, customer); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customerResponse{Customer: customer.PublicView()})
}

// Register is not supported: accounts are created by operators.
//
// @Summary      Customer registration (unsupported)
// @Tags         customer
// @Produce      json
// @Failure      400  {object}  errorResponse
// @Router       /customer/register [post]
func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerRequest
	_ = c.Bind(&req)

	_, err := h.auth.Register(c.Request().Context(), domain.ByAPIKey{Login: req.Login, Secret: req.Password})
	return err
}

// Me returns the authenticated customer without its token.
//
// @Summary      Current customer
// @Tags         customer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  customerResponse
// @Failure      401  {object}  errorResponse
// @Router       /customer/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	customer := MustCustomer(c)
	return c.JSON(http.StatusOK, customerResponse{Customer: customer.InfoView()})
}
