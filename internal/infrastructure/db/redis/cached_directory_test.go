package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
	"github.com/foodcourier/marketplace/internal/infrastructure/db/memory"
)

type fakeTokenCache struct {
	entries   map[string]string
	lookupErr error
	lookups   int
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{entries: make(map[string]string)}
}

func (f *fakeTokenCache) Lookup(_ context.Context, token string) (string, error) {
	f.lookups++
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	return f.entries[token], nil
}

func (f *fakeTokenCache) Remember(_ context.Context, token, id string) error {
	f.entries[token] = id
	return nil
}

func (f *fakeTokenCache) Forget(_ context.Context, token string) error {
	delete(f.entries, token)
	return nil
}

func seed(t *testing.T, d ports.CustomerDirectory, login, token string) *domain.Customer {
	t.Helper()
	c, err := d.Create(context.Background(), &domain.Customer{Login: login})
	require.NoError(t, err)
	c.AccessToken = token
	require.NoError(t, d.Update(context.Background(), c))
	return c
}

func TestCachedDirectory_MissPopulatesCache(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	alice := seed(t, inner, "alice", "tok-abc")
	cache := newFakeTokenCache()
	d := NewCachedDirectory(inner, cache, zerolog.Nop())

	got, err := d.FindOneWhere(context.Background(), ports.FieldAccessToken, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, alice.ID, cache.entries["tok-abc"])
}

func TestCachedDirectory_UpdateIndexesNewToken(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	cache := newFakeTokenCache()
	d := NewCachedDirectory(inner, cache, zerolog.Nop())

	alice := seed(t, d, "alice", "tok-1")
	assert.Equal(t, alice.ID, cache.entries["tok-1"])

	got, err := d.FindOneWhere(context.Background(), ports.FieldAccessToken, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestCachedDirectory_StaleEntryRejected(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	cache := newFakeTokenCache()
	d := NewCachedDirectory(inner, cache, zerolog.Nop())

	alice := seed(t, d, "alice", "tok-old")
	alice.AccessToken = "tok-new"
	require.NoError(t, d.Update(context.Background(), alice))

	_, err := d.FindOneWhere(context.Background(), ports.FieldAccessToken, "tok-old")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	_, stillCached := cache.entries["tok-old"]
	assert.False(t, stillCached)
}

func TestCachedDirectory_CacheErrorFallsBack(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	alice := seed(t, inner, "alice", "tok-abc")
	cache := newFakeTokenCache()
	cache.lookupErr = errors.New("connection refused")
	d := NewCachedDirectory(inner, cache, zerolog.Nop())

	got, err := d.FindOneWhere(context.Background(), ports.FieldAccessToken, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestCachedDirectory_LoginLookupBypassesCache(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	seed(t, inner, "alice", "tok-abc")
	cache := newFakeTokenCache()
	d := NewCachedDirectory(inner, cache, zerolog.Nop())

	_, err := d.FindOneWhere(context.Background(), ports.FieldLogin, "alice")
	require.NoError(t, err)
	assert.Zero(t, cache.lookups)
}

func TestTokenKey_HidesToken(t *testing.T) {
	key := tokenKey("tok-abc")
	assert.NotContains(t, key, "tok-abc")
	assert.Equal(t, key, tokenKey("tok-abc"))
	assert.NotEqual(t, key, tokenKey("tok-abd"))
}

func TestCachedDirectory_SetAccessTokenIfEmptyIndexesWinnerOnly(t *testing.T) {
	inner := memory.NewCustomerDirectory()
	cache := newFakeTokenCache()
	d := NewCachedDirectory(inner, cache, zerolog.Nop())
	ctx := context.Background()

	alice, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)

	set, err := d.SetAccessTokenIfEmpty(ctx, alice.ID, "tok-win")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, alice.ID, cache.entries["tok-win"])

	set, err = d.SetAccessTokenIfEmpty(ctx, alice.ID, "tok-lose")
	require.NoError(t, err)
	assert.False(t, set)
	assert.NotContains(t, cache.entries, "tok-lose")
}
