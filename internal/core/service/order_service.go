package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/api/metrics"
	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// OrderService places and lists orders on behalf of a customer.
type OrderService struct {
	places ports.PlaceService
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(places ports.PlaceService, repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{places: places, repo: repo, logger: logger}
}

// Place validates every line against the merchant's menu, freezes the unit
// prices and persists the order.
func (s *OrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	if in.CustomerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidOrder
	}

	menu, err := s.places.Menu(ctx, in.MerchantID)
	if err != nil {
		return nil, err
	}

	items := make(map[string]domain.MenuItem)
	for _, category := range menu {
		for _, item := range category.Items {
			items[item.ID] = item
		}
	}

	order := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		MerchantID: in.MerchantID,
		Status:     domain.OrderPlaced,
		CreatedAt:  time.Now().UTC(),
	}
	for _, line := range in.Lines {
		item, ok := items[line.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown menu item %q", domain.ErrInvalidOrder, line.MenuItemID)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidOrder)
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
		})
		order.Total += item.Price * float64(line.Quantity)
	}
	order.Total = math.Round(order.Total*100) / 100

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	s.logger.Info().
		Str("order_id", order.ID).
		Str("customer_id", order.CustomerID).
		Str("merchant_id", order.MerchantID).
		Msg("order placed")
	return order, nil
}

func (s *OrderService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
