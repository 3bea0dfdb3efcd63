package catalog

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/cmdutil"
)

// CatalogCmd is the parent command for merchant catalog operations
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the merchant catalog",
	Long: `Commands for loading merchants and their menus. Customers only read the
catalog, so this is how places become available.`,
}

func init() {
	CatalogCmd.AddCommand(importCmd)
}

var openServices = func(ctx context.Context) (*cmdutil.Services, func(), error) {
	return cmdutil.OpenPersistent(ctx, "catalog")
}
