package domain

import (
	"errors"
	"time"
)

var ErrInvalidOrder = errors.New("invalid order")

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderAccepted  OrderStatus = "accepted"
	OrderDelivered OrderStatus = "delivered"
)

// OrderItem is a menu item line with its price frozen at order time.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Name       string  `json:"name" bson:"name"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	UnitPrice  float64 `json:"unit_price" bson:"unit_price"`
}

// Order references its customer by id; the customer record never holds it.
type Order struct {
	ID         string      `json:"_id" bson:"_id"`
	CustomerID string      `json:"customer_id" bson:"customer_id"`
	MerchantID string      `json:"merchant_id" bson:"merchant_id"`
	Items      []OrderItem `json:"items" bson:"items"`
	Total      float64     `json:"total" bson:"total"`
	Status     OrderStatus `json:"status" bson:"status"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}
