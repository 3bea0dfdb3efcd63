package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePrincipalKind partitions route groups by principal type. Handlers
// behind it may assume the principal has one of the allowed kinds.
func RequirePrincipalKind(kinds ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
			}
			if _, ok := allowed[p.PrincipalKind()]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
