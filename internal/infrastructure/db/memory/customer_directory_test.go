package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

func TestCustomerDirectory_CreateAssignsID(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	a, err := d.Create(ctx, &domain.Customer{Name: "Alice", Login: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	b, err := d.Create(ctx, &domain.Customer{Name: "Bob", Login: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := d.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestCustomerDirectory_DuplicateLogin(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	_, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)
	_, err = d.Create(ctx, &domain.Customer{Login: "alice"})
	assert.ErrorIs(t, err, domain.ErrCustomerExists)
}

func TestCustomerDirectory_FindOneWhere(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	created, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)
	created.AccessToken = "tok-abc"
	require.NoError(t, d.Update(ctx, created))

	byLogin, err := d.FindOneWhere(ctx, ports.FieldLogin, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLogin.ID)

	byToken, err := d.FindOneWhere(ctx, ports.FieldAccessToken, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byToken.ID)

	_, err = d.FindOneWhere(ctx, ports.FieldAccessToken, "tok-ab")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = d.FindOneWhere(ctx, ports.Field("name"), "x")
	assert.Error(t, err)
}

func TestCustomerDirectory_ReturnsCopies(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	created, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)
	created.AccessToken = "mutated-locally"

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AccessToken)
}

func TestCustomerDirectory_UpdateUnknown(t *testing.T) {
	d := NewCustomerDirectory()
	err := d.Update(context.Background(), &domain.Customer{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerDirectory_ConcurrentUpdates(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	created, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := d.FindByID(ctx, created.ID)
			if err != nil {
				return
			}
			c.AccessToken = fmt.Sprintf("tok-%d", i)
			_ = d.Update(ctx, c)
		}(i)
	}
	wg.Wait()

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)

	byToken, err := d.FindOneWhere(ctx, ports.FieldAccessToken, got.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byToken.ID)
}

func TestCustomerDirectory_SetAccessTokenIfEmpty(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	created, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)

	set, err := d.SetAccessTokenIfEmpty(ctx, created.ID, "first")
	require.NoError(t, err)
	assert.True(t, set)

	set, err = d.SetAccessTokenIfEmpty(ctx, created.ID, "second")
	require.NoError(t, err)
	assert.False(t, set)

	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.AccessToken)

	_, err = d.SetAccessTokenIfEmpty(ctx, "missing", "x")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerDirectory_SetAccessTokenIfEmptyHasOneWinner(t *testing.T) {
	d := NewCustomerDirectory()
	ctx := context.Background()

	created, err := d.Create(ctx, &domain.Customer{Login: "alice"})
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins []string
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("tok-%d", i)
			set, err := d.SetAccessTokenIfEmpty(ctx, created.ID, token)
			if err == nil && set {
				mu.Lock()
				wins = append(wins, token)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, wins, 1)
	got, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, wins[0], got.AccessToken)
}
