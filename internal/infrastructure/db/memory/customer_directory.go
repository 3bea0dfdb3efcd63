// Package memory holds an in-process customer directory used by the
// development driver and by tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// CustomerDirectory keeps customers in a map guarded by a RWMutex. Records
// are copied on the way in and out so callers never share state with it.
type CustomerDirectory struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Customer
	ordered []string
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{byID: make(map[string]*domain.Customer)}
}

func (d *CustomerDirectory) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return clone(c), nil
}

// FindOneWhere scans in insertion order and returns the first match.
func (d *CustomerDirectory) FindOneWhere(_ context.Context, field ports.Field, value string) (*domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.ordered {
		c := d.byID[id]
		var v string
		switch field {
		case ports.FieldLogin:
			v = c.Login
		case ports.FieldAccessToken:
			v = c.AccessToken
		default:
			return nil, fmt.Errorf("find customer: unsupported field %q", field)
		}
		if v == value {
			return clone(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (d *CustomerDirectory) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.byID {
		if existing.Login == c.Login {
			return nil, domain.ErrCustomerExists
		}
	}

	stored := clone(c)
	stored.ID = uuid.NewString()
	d.byID[stored.ID] = stored
	d.ordered = append(d.ordered, stored.ID)
	return clone(stored), nil
}

func (d *CustomerDirectory) Update(_ context.Context, c *domain.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.byID[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	if existing.Login != c.Login {
		for id, other := range d.byID {
			if id != c.ID && other.Login == c.Login {
				return domain.ErrCustomerExists
			}
		}
	}
	d.byID[c.ID] = clone(c)
	return nil
}

func (d *CustomerDirectory) SetAccessTokenIfEmpty(_ context.Context, id, token string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.byID[id]
	if !ok {
		return false, domain.ErrCustomerNotFound
	}
	if existing.AccessToken != "" {
		return false, nil
	}
	existing.AccessToken = token
	return true, nil
}

func clone(c *domain.Customer) *domain.Customer {
	cp := *c
	return &cp
}
