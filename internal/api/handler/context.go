package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/api/middleware"
	"github.com/foodcourier/marketplace/internal/core/domain"
)

// CustomerFrom narrows the request principal to a customer. Any other type,
// or no principal at all, yields domain.ErrTypeMismatch.
func CustomerFrom(c echo.Context) (*domain.Customer, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, fmt.Errorf("%w: no principal on request", domain.ErrTypeMismatch)
	}
	customer, ok := p.(*domain.Customer)
	if !ok || customer == nil {
		return nil, fmt.Errorf("%w: want *domain.Customer, got %T", domain.ErrTypeMismatch, p)
	}
	return customer, nil
}

// MustCustomer is called at the top of customer-scoped handlers. Those routes
// sit behind Auth and RequirePrincipalKind, so a mismatch here is a routing
// bug: it panics and Recover turns it into a 500.
func MustCustomer(c echo.Context) *domain.Customer {
	customer, err := CustomerFrom(c)
	if err != nil {
		panic(err)
	}
	return customer
}
