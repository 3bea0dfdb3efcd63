package ports

import (
	"context"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// RadiusQuery selects merchants within RadiusKm of a point.
type RadiusQuery struct {
	Center   domain.Coordinates
	RadiusKm float64
}

// PlaceService exposes merchants with their locations and menus.
type PlaceService interface {
	All(ctx context.Context) ([]*domain.Merchant, error)
	InRadius(ctx context.Context, q RadiusQuery) ([]*domain.Merchant, error)
	Info(ctx context.Context, merchantID string) (*domain.Merchant, error)
	Menu(ctx context.Context, merchantID string) ([]*domain.MenuCategory, error)
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderInput carries everything needed to place an order.
type PlaceOrderInput struct {
	CustomerID string
	MerchantID string
	Lines      []OrderLineInput
}

type OrderService interface {
	Place(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
}
