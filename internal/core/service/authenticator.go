package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/api/metrics"
	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// errUnhandledCredential marks a credential variant the dispatch does not
// cover. It always travels wrapped with domain.ErrInvalidCredentials.
var errUnhandledCredential = errors.New("unhandled credential kind")

// dummySecret feeds the timing equalisation digest; it is never a valid secret.
const dummySecret = "equalise-unknown-login-timing"

// Authenticator resolves the three credential kinds to a customer. It holds
// no mutable state besides a lazily built dummy digest.
type Authenticator struct {
	directory ports.CustomerDirectory
	hasher    ports.Hasher
	log       zerolog.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

func NewAuthenticator(directory ports.CustomerDirectory, hasher ports.Hasher, log zerolog.Logger) *Authenticator {
	return &Authenticator{directory: directory, hasher: hasher, log: log}
}

// Resolve returns the customer the credential proves, or an error matching
// domain.ErrInvalidCredentials. Directory failures other than not-found are
// returned as is so the caller can report them as server errors.
func (a *Authenticator) Resolve(ctx context.Context, cred domain.Credential) (*domain.Customer, error) {
	var (
		customer *domain.Customer
		err      error
	)

	switch c := cred.(type) {
	case domain.ByIdentifier:
		customer, err = a.byIdentifier(ctx, c)
	case domain.ByAccessToken:
		customer, err = a.byAccessToken(ctx, c)
	case domain.ByAPIKey:
		customer, err = a.byAPIKey(ctx, c)
	default:
		err = fmt.Errorf("%w: %w (%T)", domain.ErrInvalidCredentials, errUnhandledCredential, cred)
	}

	kind := "unknown"
	if cred != nil {
		kind = string(cred.Kind())
	}

	if err != nil {
		result := "rejected"
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			result = "error"
		}
		metrics.AuthAttemptsTotal.WithLabelValues(kind, result).Inc()
		a.log.Debug().Str("kind", kind).Str("result", result).Msg("credential not resolved")
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues(kind, "resolved").Inc()
	return customer, nil
}

// Register is rejected by policy: accounts are created by the administrative
// path only.
func (a *Authenticator) Register(_ context.Context, _ domain.Credential) (*domain.Customer, error) {
	return nil, domain.ErrRegistrationUnsupported
}

func (a *Authenticator) byIdentifier(ctx context.Context, c domain.ByIdentifier) (*domain.Customer, error) {
	if strings.TrimSpace(c.ID) == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return a.lookup(a.directory.FindByID(ctx, c.ID))
}

func (a *Authenticator) byAccessToken(ctx context.Context, c domain.ByAccessToken) (*domain.Customer, error) {
	// Customers without an issued token store "", which must never match.
	if strings.TrimSpace(c.Token) == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return a.lookup(a.directory.FindOneWhere(ctx, ports.FieldAccessToken, c.Token))
}

func (a *Authenticator) byAPIKey(ctx context.Context, c domain.ByAPIKey) (*domain.Customer, error) {
	if c.Login == "" || c.Secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := a.lookup(a.directory.FindOneWhere(ctx, ports.FieldLogin, c.Login))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.hasher.Verify(c.Secret, a.dummy())
		}
		return nil, err
	}

	if !a.hasher.Verify(c.Secret, customer.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return customer, nil
}

// lookup collapses not-found into ErrInvalidCredentials.
func (a *Authenticator) lookup(customer *domain.Customer, err error) (*domain.Customer, error) {
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return customer, nil
}

func (a *Authenticator) dummy() string {
	a.dummyOnce.Do(func() {
		digest, err := a.hasher.Hash(dummySecret)
		if err != nil {
			a.log.Warn().Err(err).Msg("failed to build dummy digest")
			return
		}
		a.dummyDigest = digest
	})
	return a.dummyDigest
}
