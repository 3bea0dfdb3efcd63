package customer

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/cmdutil"
)

// CustomerCmd is the parent command for customer account operations
var CustomerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customer accounts",
	Long: `Commands for managing customer accounts directly against the directory.
Self-service registration is disabled, so this is the only way to create one.`,
}

func init() {
	CustomerCmd.AddCommand(createCmd)
	CustomerCmd.AddCommand(rotateTokenCmd)
	CustomerCmd.AddCommand(showCmd)
}

// openServices connects the stores for a one-shot admin command.
var openServices = func(ctx context.Context) (*cmdutil.Services, func(), error) {
	return cmdutil.OpenPersistent(ctx, "customer")
}
