package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// Auth extracts a credential from the Authorization header, resolves it and
// stores the customer as the request principal.
//
//	Authorization: Bearer <access token>  -> domain.ByAccessToken
//	Authorization: Basic <login:secret>   -> domain.ByAPIKey
func Auth(auth ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, err := credentialFrom(c.Request())
			if err != nil {
				return err
			}

			customer, err := auth.Resolve(c.Request().Context(), cred)
			if err != nil {
				return err
			}

			SetPrincipal(c, customer)
			return next(c)
		}
	}
}

func credentialFrom(r *http.Request) (domain.Credential, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	scheme, value, ok := strings.Cut(authHeader, " ")
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	switch {
	case strings.EqualFold(scheme, "bearer"):
		return domain.ByAccessToken{Token: strings.TrimSpace(value)}, nil
	case strings.EqualFold(scheme, "basic"):
		login, secret, ok := r.BasicAuth()
		if !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return domain.ByAPIKey{Login: login, Secret: secret}, nil
	default:
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
}
