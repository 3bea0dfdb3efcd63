package ports

import (
	"context"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// Field names a customer attribute that FindOneWhere can filter on.
type Field string

const (
	FieldLogin       Field = "login"
	FieldAccessToken Field = "access_token"
)

// CustomerDirectory is the persisted collection of customers. It owns all
// record mutation and must serialise conflicting writes to one record.
type CustomerDirectory interface {
	// FindByID returns domain.ErrCustomerNotFound when no record has the id.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// FindOneWhere returns the first record whose field equals value exactly,
	// or domain.ErrCustomerNotFound.
	FindOneWhere(ctx context.Context, field Field, value string) (*domain.Customer, error)
	// Create assigns the id. Duplicate logins yield domain.ErrCustomerExists.
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	// SetAccessTokenIfEmpty stores token only while the record has no token.
	// It reports false when another token was already present.
	SetAccessTokenIfEmpty(ctx context.Context, id, token string) (bool, error)
}
