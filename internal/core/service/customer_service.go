package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// CustomerService implements account creation for operators.
type CustomerService struct {
	directory ports.CustomerDirectory
	hasher    ports.Hasher
	auth      ports.Authenticator
	issuer    ports.TokenIssuer
	log       zerolog.Logger
}

func NewCustomerService(
	directory ports.CustomerDirectory,
	hasher ports.Hasher,
	auth ports.Authenticator,
	issuer ports.TokenIssuer,
	log zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		directory: directory,
		hasher:    hasher,
		auth:      auth,
		issuer:    issuer,
		log:       log,
	}
}

// NewCustomer builds a record from a plaintext password. The plaintext is
// hashed immediately and never stored.
func NewCustomer(hasher ports.Hasher, name, login, password string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	login = strings.TrimSpace(login)
	if name == "" || login == "" || password == "" {
		return nil, domain.ErrInvalidCustomer
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{Name: name, Login: login, PasswordHash: hash}, nil
}

// Create persists a new customer and issues its first access token.
func (s *CustomerService) Create(ctx context.Context, name, login, password string) (*domain.Customer, string, error) {
	customer, err := NewCustomer(s.hasher, name, login, password)
	if err != nil {
		return nil, "", err
	}

	created, err := s.directory.Create(ctx, customer)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(ctx, created)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("customer_id", created.ID).Str("login", created.Login).Msg("customer created")
	return created, token, nil
}

// RotateToken replaces the access token of the customer with the given id.
func (s *CustomerService) RotateToken(ctx context.Context, id string) (*domain.Customer, string, error) {
	customer, err := s.auth.Resolve(ctx, domain.ByIdentifier{ID: id})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(ctx, customer)
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}
