package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
	"github.com/foodcourier/marketplace/internal/infrastructure/db/memory"
)

// plainHasher is a fast reversible stand-in for bcrypt.
type plainHasher struct {
	verifies atomic.Int64
	hashErr  error
}

func (h *plainHasher) Hash(plaintext string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "h:" + plaintext, nil
}

func (h *plainHasher) Verify(plaintext, digest string) bool {
	h.verifies.Add(1)
	return strings.HasPrefix(digest, "h:") && digest[2:] == plaintext
}

// failingDirectory wraps a directory and injects errors per operation.
type failingDirectory struct {
	ports.CustomerDirectory
	findErr   error
	updateErr error
}

func (d *failingDirectory) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	return d.CustomerDirectory.FindByID(ctx, id)
}

func (d *failingDirectory) FindOneWhere(ctx context.Context, field ports.Field, value string) (*domain.Customer, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	return d.CustomerDirectory.FindOneWhere(ctx, field, value)
}

func (d *failingDirectory) Update(ctx context.Context, c *domain.Customer) error {
	if d.updateErr != nil {
		return d.updateErr
	}
	return d.CustomerDirectory.Update(ctx, c)
}

// barrierDirectory holds every SetAccessTokenIfEmpty call until n callers
// have arrived, so all of them read the record before any of them writes.
type barrierDirectory struct {
	ports.CustomerDirectory
	arrived sync.WaitGroup
}

func newBarrierDirectory(inner ports.CustomerDirectory, n int) *barrierDirectory {
	d := &barrierDirectory{CustomerDirectory: inner}
	d.arrived.Add(n)
	return d
}

func (d *barrierDirectory) SetAccessTokenIfEmpty(ctx context.Context, id, token string) (bool, error) {
	d.arrived.Done()
	d.arrived.Wait()
	return d.CustomerDirectory.SetAccessTokenIfEmpty(ctx, id, token)
}

var errStoreDown = errors.New("store unavailable")

// seedCustomer stores a customer with the given plaintext password and token.
func seedCustomer(dir *memory.CustomerDirectory, h ports.Hasher, login, password, token string) *domain.Customer {
	hash, _ := h.Hash(password)
	c, err := dir.Create(context.Background(), &domain.Customer{Name: login, Login: login, PasswordHash: hash})
	if err != nil {
		panic(err)
	}
	if token != "" {
		c.AccessToken = token
		if err := dir.Update(context.Background(), c); err != nil {
			panic(err)
		}
	}
	return c
}
