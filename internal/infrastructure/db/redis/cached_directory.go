package redis

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/api/metrics"
	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// TokenCache abstracts the token -> id index (Redis).
type TokenCache interface {
	Lookup(ctx context.Context, token string) (string, error)
	Remember(ctx context.Context, token, customerID string) error
	Forget(ctx context.Context, token string) error
}

// CachedDirectory speeds up access-token lookups. A cached id is only
// trusted after the record it points to still carries the same token, so a
// rotated token can never resolve through a stale entry.
type CachedDirectory struct {
	ports.CustomerDirectory
	cache TokenCache
	log   zerolog.Logger
}

func NewCachedDirectory(inner ports.CustomerDirectory, cache TokenCache, log zerolog.Logger) *CachedDirectory {
	return &CachedDirectory{CustomerDirectory: inner, cache: cache, log: log}
}

func (d *CachedDirectory) FindOneWhere(ctx context.Context, field ports.Field, value string) (*domain.Customer, error) {
	if field != ports.FieldAccessToken || value == "" {
		return d.CustomerDirectory.FindOneWhere(ctx, field, value)
	}

	id, err := d.cache.Lookup(ctx, value)
	switch {
	case err != nil:
		metrics.TokenCacheLookupsTotal.WithLabelValues("error").Inc()
		d.log.Warn().Err(err).Msg("token cache lookup failed, falling back to directory")
	case id != "":
		c, err := d.CustomerDirectory.FindByID(ctx, id)
		if err == nil && c.AccessToken == value {
			metrics.TokenCacheLookupsTotal.WithLabelValues("hit").Inc()
			return c, nil
		}
		if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, err
		}
		metrics.TokenCacheLookupsTotal.WithLabelValues("stale").Inc()
		if ferr := d.cache.Forget(ctx, value); ferr != nil {
			d.log.Warn().Err(ferr).Msg("failed to drop stale token cache entry")
		}
	default:
		metrics.TokenCacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	c, err := d.CustomerDirectory.FindOneWhere(ctx, field, value)
	if err != nil {
		return nil, err
	}
	d.remember(ctx, c)
	return c, nil
}

// Update persists the record, then indexes its current token.
func (d *CachedDirectory) Update(ctx context.Context, c *domain.Customer) error {
	if err := d.CustomerDirectory.Update(ctx, c); err != nil {
		return err
	}
	d.remember(ctx, c)
	return nil
}

func (d *CachedDirectory) SetAccessTokenIfEmpty(ctx context.Context, id, token string) (bool, error) {
	set, err := d.CustomerDirectory.SetAccessTokenIfEmpty(ctx, id, token)
	if err != nil || !set {
		return set, err
	}
	d.remember(ctx, &domain.Customer{ID: id, AccessToken: token})
	return true, nil
}

func (d *CachedDirectory) remember(ctx context.Context, c *domain.Customer) {
	if c.AccessToken == "" {
		return
	}
	if err := d.cache.Remember(ctx, c.AccessToken, c.ID); err != nil {
		d.log.Warn().Err(err).Str("customer_id", c.ID).Msg("failed to cache access token")
	}
}
