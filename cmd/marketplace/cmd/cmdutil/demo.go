package cmdutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/infrastructure/catalog"
	"github.com/foodcourier/marketplace/internal/infrastructure/config"
)

// DemoSeed is data loaded into the in-memory stores when serve starts.
type DemoSeed struct {
	// Customer is login:password.
	Customer    string
	CatalogPath string
}

func (d DemoSeed) empty() bool {
	return d.Customer == "" && d.CatalogPath == ""
}

// SeedDemo fills the memory stores. Persistent drivers are refused so demo
// data never lands in a real database.
func SeedDemo(ctx context.Context, cfg *config.Config, svc *Services, seed DemoSeed, log zerolog.Logger) error {
	if seed.empty() {
		return nil
	}
	if cfg.Auth.DirectoryDriver != config.DriverMemory {
		return fmt.Errorf("demo data requires DIRECTORY_DRIVER=%s", config.DriverMemory)
	}

	if seed.CatalogPath != "" {
		entries, err := catalog.LoadFile(seed.CatalogPath)
		if err != nil {
			return err
		}
		n, err := svc.Catalog.Import(ctx, entries)
		if err != nil {
			return fmt.Errorf("failed to import demo catalog: %w", err)
		}
		log.Info().Int("merchants", n).Str("path", seed.CatalogPath).Msg("demo catalog loaded")
	}

	if seed.Customer != "" {
		login, password, ok := strings.Cut(seed.Customer, ":")
		if !ok || login == "" {
			return fmt.Errorf("--demo-customer must be login:password")
		}
		c, token, err := svc.Customers.Create(ctx, login, login, password)
		if err != nil {
			return fmt.Errorf("failed to create demo customer: %w", err)
		}
		log.Info().Str("customer_id", c.ID).Str("login", c.Login).Str("access_token", token).Msg("demo customer created")
	}
	return nil
}
