package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// PlaceRepository holds merchants and menus in memory.
type PlaceRepository struct {
	mu         sync.RWMutex
	merchants  map[string]domain.Merchant
	categories map[string][]domain.MenuCategory
}

func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{
		merchants:  make(map[string]domain.Merchant),
		categories: make(map[string][]domain.MenuCategory),
	}
}

// AddMerchant stores a merchant together with its menu, replacing any
// previous entry with the same id.
func (r *PlaceRepository) AddMerchant(m domain.Merchant, menu ...domain.MenuCategory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.merchants[m.ID] = m
	stored := make([]domain.MenuCategory, len(menu))
	for i := range menu {
		stored[i] = copyCategory(menu[i])
		stored[i].MerchantID = m.ID
	}
	r.categories[m.ID] = stored
}

func (r *PlaceRepository) CreateMerchant(_ context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	r.merchants[m.ID] = *m
	return nil
}

func (r *PlaceRepository) CreateMenuCategory(_ context.Context, c *domain.MenuCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.merchants[c.MerchantID]; !ok {
		return domain.ErrMerchantNotFound
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.categories[c.MerchantID] = append(r.categories[c.MerchantID], copyCategory(*c))
	return nil
}

// ListMerchants returns merchants ordered by id.
func (r *PlaceRepository) ListMerchants(_ context.Context) ([]*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Merchant, 0, len(r.merchants))
	for _, m := range r.merchants {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlaceRepository) FindMerchant(_ context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.merchants[id]
	if !ok {
		return nil, domain.ErrMerchantNotFound
	}
	return &m, nil
}

func (r *PlaceRepository) MenuCategories(_ context.Context, merchantID string) ([]*domain.MenuCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.categories[merchantID]
	out := make([]*domain.MenuCategory, len(src))
	for i := range src {
		cat := copyCategory(src[i])
		out[i] = &cat
	}
	return out, nil
}

func copyCategory(c domain.MenuCategory) domain.MenuCategory {
	c.Items = append([]domain.MenuItem(nil), c.Items...)
	return c
}
