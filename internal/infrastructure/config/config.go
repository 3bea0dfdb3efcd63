package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// DirectoryDriver selects the customer directory backend: mongo or memory.
	DirectoryDriver string `env:"DIRECTORY_DRIVER, default=mongo"`
	BcryptCost      int    `env:"BCRYPT_COST,      default=10"`
	TokenBytes      int    `env:"TOKEN_BYTES,      default=32"`
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,            default=food_marketplace"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=0"`
}

type RedisConfig struct {
	Addr          string        `env:"REDIS_ADDR,          default=localhost:6379"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB,            default=0"`
	PoolSize      int           `env:"REDIS_POOL_SIZE,     default=0"`
	TokenCache    bool          `env:"TOKEN_CACHE_ENABLED, default=true"`
	TokenCacheTTL time.Duration `env:"TOKEN_CACHE_TTL,     default=1h"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Auth.DirectoryDriver {
	case DriverMongo, DriverMemory:
	default:
		return nil, fmt.Errorf("config: unknown DIRECTORY_DRIVER %q", cfg.Auth.DirectoryDriver)
	}
	if cfg.IsProduction() && cfg.Auth.DirectoryDriver == DriverMemory {
		return nil, fmt.Errorf("config: the memory directory cannot be used in production")
	}
	return &cfg, nil
}
