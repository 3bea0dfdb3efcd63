package customer

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rotateTokenCmd = &cobra.Command{
	Use:   "rotate-token [id]",
	Short: "Replace a customer's access token",
	Long:  `Issues a new access token. The previous token stops resolving immediately.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openServices(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		c, token, err := svc.Customers.RotateToken(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to rotate token: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "New access token for %s (%s): %s\n", c.Login, c.ID, token)
		return nil
	},
}
