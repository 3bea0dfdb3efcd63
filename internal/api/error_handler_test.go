package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

func TestResolveError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"wrapped credentials", fmt.Errorf("x: %w", domain.ErrInvalidCredentials), http.StatusUnauthorized, "invalid credentials"},
		{"registration", domain.ErrRegistrationUnsupported, http.StatusBadRequest, "registration not supported"},
		{"merchant", domain.ErrMerchantNotFound, http.StatusNotFound, "merchant not found"},
		{"order detail kept", fmt.Errorf("%w: unknown menu item \"x\"", domain.ErrInvalidOrder), http.StatusUnprocessableEntity, "invalid order: unknown menu item \"x\""},
		{"customer exists", domain.ErrCustomerExists, http.StatusConflict, "customer already exists"},
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden, "forbidden"},
		{"type mismatch", domain.ErrTypeMismatch, http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("mongo down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := resolveError(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
