package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/catalog"
	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/cmdutil"
	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/customer"
	"github.com/foodcourier/marketplace/internal/infrastructure/config"
	"github.com/foodcourier/marketplace/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Food marketplace customer API",
	Long: `marketplace serves the customer API of the food marketplace: login with
a login and password, bearer-token access to places, menus and orders.
Customer accounts and the merchant catalog are managed with the customer and
catalog subcommands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  !cfg.IsProduction(),
			Output:  os.Stderr,
			Service: "marketplace",
		})

		cmd.SetContext(cmdutil.WithConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customer.CustomerCmd)
	rootCmd.AddCommand(catalog.CatalogCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
