package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	r.orders = append(r.orders, cp)
	return nil
}

// ListByCustomer filters on customer_id, newest first.
func (r *OrderRepository) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Order{}
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			o := o
			out = append(out, &o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
