package cmdutil

import (
	"context"

	"github.com/foodcourier/marketplace/internal/infrastructure/config"
)

type configKey struct{}

// WithConfig stores the loaded configuration on the command context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// MustConfig returns the configuration stored by the root command.
func MustConfig(ctx context.Context) *config.Config {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		panic("cmdutil: configuration not loaded")
	}
	return cfg
}
