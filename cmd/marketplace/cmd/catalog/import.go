package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogfile "github.com/foodcourier/marketplace/internal/infrastructure/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import merchants and menus from a YAML or JSON file",
	Long: `Reads a catalog file and creates every merchant with its menu categories.
The whole file is validated first; nothing is written if any entry is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalogfile.LoadFile(args[0])
		if err != nil {
			return err
		}

		svc, closeFn, err := openServices(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := svc.Catalog.Import(cmd.Context(), entries)
		if err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d merchant(s)\n", n)
		for _, e := range entries[:n] {
			fmt.Fprintf(out, "  %s  %s\n", e.Merchant.ID, e.Merchant.Name)
		}
		return nil
	},
}
