package ports

import (
	"context"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

// Authenticator resolves a credential to a customer.
type Authenticator interface {
	Resolve(ctx context.Context, cred domain.Credential) (*domain.Customer, error)
	// Register always fails with domain.ErrRegistrationUnsupported.
	Register(ctx context.Context, cred domain.Credential) (*domain.Customer, error)
}

// TokenIssuer assigns bearer tokens to customers and persists them.
type TokenIssuer interface {
	// Issue replaces the current token unconditionally.
	Issue(ctx context.Context, c *domain.Customer) (string, error)
	// EnsureIssued returns the stored token, issuing one only if the record
	// has none. Concurrent callers all receive the same token.
	EnsureIssued(ctx context.Context, c *domain.Customer) (string, error)
}

// CustomerService is the administrative account path. It is never exposed
// over HTTP.
type CustomerService interface {
	Create(ctx context.Context, name, login, password string) (*domain.Customer, string, error)
	RotateToken(ctx context.Context, id string) (*domain.Customer, string, error)
}
