package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// PrincipalKey is the echo context key holding the resolved domain.Principal.
const PrincipalKey = "principal"

// SetPrincipal attaches an authenticated principal to the request.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(PrincipalKey, p)
}

// PrincipalFrom returns the principal stored by the auth middleware, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(domain.Principal)
	return p, ok && p != nil
}
