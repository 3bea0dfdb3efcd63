package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps a domain sentinel to its response. An empty msg means the
// wrapped error text is safe to return as is.
type errorStatus struct {
	err  error
	code int
	msg  string
}

// Every rejected credential shares one status and message.
var errorStatuses = []errorStatus{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrRegistrationUnsupported, http.StatusBadRequest, "registration not supported"},
	{domain.ErrMerchantNotFound, http.StatusNotFound, "merchant not found"},
	{domain.ErrInvalidOrder, http.StatusUnprocessableEntity, ""},
	{domain.ErrInvalidCustomer, http.StatusUnprocessableEntity, "invalid customer"},
	{domain.ErrInvalidMerchant, http.StatusUnprocessableEntity, ""},
	{domain.ErrCustomerExists, http.StatusConflict, "customer already exists"},
}

// NewHTTPErrorHandler renders every error as {"error": "<message>"}. Domain
// sentinels get their mapped status; anything unknown is logged and reported
// as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Bool("principal_mismatch", errors.Is(err, domain.ErrTypeMismatch)).
				Msg("unhandled error")
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			if s.msg == "" {
				return s.code, err.Error()
			}
			return s.code, s.msg
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
