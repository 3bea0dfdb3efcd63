package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOptions(t *testing.T) {
	opts := newOptions(Config{Addr: "cache:6379", Password: "s3cret", DB: 2, PoolSize: 20})

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, defaultClientName, opts.ClientName)
	assert.Equal(t, defaultTimeout, opts.DialTimeout)
	assert.Equal(t, defaultTimeout, opts.ReadTimeout)
}

func TestNewOptions_CustomTimeout(t *testing.T) {
	opts := newOptions(Config{Addr: "cache:6379", Timeout: time.Second})

	assert.Equal(t, time.Second, opts.DialTimeout)
	assert.Equal(t, time.Second, opts.WriteTimeout)
}
