package customer

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	nameInput     string
	loginInput    string
	passwordInput string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer and issue its first access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openServices(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		c, token, err := svc.Customers.Create(cmd.Context(), nameInput, loginInput, passwordInput)
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Customer created successfully!")
		fmt.Fprintln(out, "----------------------------------------")
		fmt.Fprintf(out, "ID:           %s\n", c.ID)
		fmt.Fprintf(out, "Login:        %s\n", c.Login)
		fmt.Fprintf(out, "Access token: %s\n", token)
		fmt.Fprintln(out, "----------------------------------------")
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&nameInput, "name", "", "Display name")
	createCmd.Flags().StringVar(&loginInput, "login", "", "Login used with the password")
	createCmd.Flags().StringVar(&passwordInput, "password", "", "Plaintext password; stored hashed")
	_ = createCmd.MarkFlagRequired("login")
	_ = createCmd.MarkFlagRequired("password")
	_ = createCmd.MarkFlagRequired("name")
}
