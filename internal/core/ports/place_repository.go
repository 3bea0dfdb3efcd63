package ports

import (
	"context"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// PlaceRepository reads merchants and their menus.
type PlaceRepository interface {
	ListMerchants(ctx context.Context) ([]*domain.Merchant, error)
	// FindMerchant returns domain.ErrMerchantNotFound for unknown ids.
	FindMerchant(ctx context.Context, id string) (*domain.Merchant, error)
	MenuCategories(ctx context.Context, merchantID string) ([]*domain.MenuCategory, error)
}

// CatalogWriter fills the merchant catalog. Both methods assign the id when
// it is empty.
type CatalogWriter interface {
	CreateMerchant(ctx context.Context, m *domain.Merchant) error
	// CreateMenuCategory returns domain.ErrMerchantNotFound when the category
	// points at an unknown merchant.
	CreateMenuCategory(ctx context.Context, c *domain.MenuCategory) error
}

// OrderRepository persists orders. Orders are looked up by customer_id.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
}
