package handler

import "github.com/foodcourier/marketplace/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type customerResponse struct {
	Error    bool           `json:"error"`
	Customer map[string]any `json:"customer"`
}

type radiusRequest struct {
	Lat      float64 `json:"lat"       validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng"       validate:"gte=-180,lte=180"`
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
}

type merchantsResponse struct {
	Error     bool               `json:"error"`
	Merchants []*domain.Merchant `json:"merchants"`
}

type merchantResponse struct {
	Error    bool             `json:"error"`
	Merchant *domain.Merchant `json:"merchant"`
}

type menuResponse struct {
	Error          bool                   `json:"error"`
	MenuCategories []*domain.MenuCategory `json:"menu_categories"`
}

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,gt=0"`
}

type placeOrderRequest struct {
	MerchantID string             `json:"merchant_id" validate:"required"`
	Items      []orderLineRequest `json:"items"       validate:"required,min=1,dive"`
}

type orderResponse struct {
	Error bool          `json:"error"`
	Order *domain.Order `json:"order"`
}

type ordersResponse struct {
	Error  bool            `json:"error"`
	Orders []*domain.Order `json:"orders"`
}
