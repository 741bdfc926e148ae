package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/models"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a new account",
	Long: `Create a new account on the backend.

The password and its confirmation are compared locally before anything is
sent; a mismatch never reaches the network.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		password, _ := cmd.Flags().GetString("password")
		confirm, _ := cmd.Flags().GetString("confirm")
		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")
		position, _ := cmd.Flags().GetString("position")

		req := api.RegisterRequest{
			Username:     args[0],
			Password:     password,
			Confirm:      confirm,
			Name:         name,
			Role:         models.Role(role),
			RoleEmployee: models.EmployeeRole(position),
		}
		if !req.Role.Valid() {
			fmt.Printf("Error: role must be PM or EMPLOYEE, got %q\n", role)
			return
		}

		if err := a.gateway.Register(context.Background(), req); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Registered %s. You can now log in.\n", args[0])
	},
}

func init() {
	registerCmd.Flags().StringP("password", "p", "", "Password")
	registerCmd.Flags().StringP("confirm", "c", "", "Password confirmation")
	registerCmd.Flags().StringP("name", "n", "", "Full name")
	registerCmd.Flags().StringP("role", "r", "EMPLOYEE", "Role: PM or EMPLOYEE")
	registerCmd.Flags().String("position", "", "Position for EMPLOYEE accounts, e.g. JUNIOR_DEVELOPER")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("confirm")
}
