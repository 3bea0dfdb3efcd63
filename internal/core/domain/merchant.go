package domain

import (
	"errors"
	"math"
)

var (
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrInvalidMerchant  = errors.New("invalid merchant")
)

const earthRadiusKm = 6371.0

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// DistanceKm returns the great-circle distance between two points.
func (c Coordinates) DistanceKm(to Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (to.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Merchant is a place customers can order from.
type Merchant struct {
	ID          string      `json:"_id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Address     string      `json:"address" bson:"address"`
	Location    Coordinates `json:"location" bson:"location"`
}

// MenuItem is a single orderable dish.
type MenuItem struct {
	ID          string  `json:"_id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
}

// MenuCategory groups menu items of one merchant.
type MenuCategory struct {
	ID         string     `json:"_id" bson:"_id,omitempty"`
	MerchantID string     `json:"merchant_id" bson:"merchant_id"`
	Name       string     `json:"name" bson:"name"`
	Items      []MenuItem `json:"items" bson:"items"`
}

// CatalogEntry is a merchant with its full menu, as imported by operators.
type CatalogEntry struct {
	Merchant Merchant
	Menu     []MenuCategory
}
