package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/api/metrics"
	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

const defaultTokenBytes = 32

// TokenIssuer generates opaque bearer tokens. Tokens carry no expiry.
type TokenIssuer struct {
	directory  ports.CustomerDirectory
	tokenBytes int
	log        zerolog.Logger
}

// NewTokenIssuer returns an issuer producing tokens of tokenBytes random
// bytes. Values below 16 fall back to 32.
func NewTokenIssuer(directory ports.CustomerDirectory, tokenBytes int, log zerolog.Logger) *TokenIssuer {
	if tokenBytes < 16 {
		tokenBytes = defaultTokenBytes
	}
	return &TokenIssuer{directory: directory, tokenBytes: tokenBytes, log: log}
}

// Issue replaces the customer's access token and persists the change. On
// failure the customer keeps its previous token.
func (i *TokenIssuer) Issue(ctx context.Context, c *domain.Customer) (string, error) {
	if c == nil || c.ID == "" {
		return "", domain.ErrInvalidCustomer
	}

	token, err := i.generate()
	if err != nil {
		return "", err
	}

	previous := c.AccessToken
	c.AccessToken = token
	if err := i.directory.Update(ctx, c); err != nil {
		c.AccessToken = previous
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()
	i.log.Info().Str("customer_id", c.ID).Msg("access token issued")
	return token, nil
}

// EnsureIssued keeps an existing token. Otherwise it writes a new token only
// if the stored record is still without one; when another caller got there
// first, the stored token is read back and returned instead.
func (i *TokenIssuer) EnsureIssued(ctx context.Context, c *domain.Customer) (string, error) {
	if c == nil || c.ID == "" {
		return "", domain.ErrInvalidCustomer
	}
	if c.AccessToken != "" {
		return c.AccessToken, nil
	}

	token, err := i.generate()
	if err != nil {
		return "", err
	}

	set, err := i.directory.SetAccessTokenIfEmpty(ctx, c.ID, token)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if !set {
		stored, err := i.directory.FindByID(ctx, c.ID)
		if err != nil {
			return "", fmt.Errorf("issue token: reload: %w", err)
		}
		c.AccessToken = stored.AccessToken
		i.log.Debug().Str("customer_id", c.ID).Msg("access token already issued concurrently")
		return stored.AccessToken, nil
	}

	c.AccessToken = token
	metrics.TokensIssuedTotal.Inc()
	i.log.Info().Str("customer_id", c.ID).Msg("access token issued")
	return token, nil
}

func (i *TokenIssuer) generate() (string, error) {
	b := make([]byte, i.tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("issue token: generate: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
