package customer

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a customer record without secrets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openServices(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := svc.Authenticator.Resolve(cmd.Context(), domain.ByIdentifier{ID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to load customer %s: %w", args[0], err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(c.InfoView())
	},
}
