package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/models"
)

var employeesCmd = &cobra.Command{
	Use:     "employees",
	Aliases: []string{"employee"},
	Short:   "List and manage employees (PM only)",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		if !a.sess.IsPrivileged() {
			fmt.Println("The employee directory is only available to PM accounts.")
			return
		}

		employees, err := controller.NewEmployees(a.client, a.sess).List(context.Background())
		if err != nil {
			fmt.Printf("Error fetching employees: %v\n", err)
			return
		}
		if len(employees) == 0 {
			fmt.Println("No employees found.")
			return
		}

		fmt.Printf("%-4s %-24s %-16s %-10s %s\n", "ID", "NAME", "USERNAME", "ROLE", "POSITION")
		fmt.Println(strings.Repeat("-", 76))
		for _, e := range employees {
			fmt.Printf("%-4d %-24s %-16s %-10s %s\n",
				e.ID,
				truncate(e.Name, 22),
				truncate(e.Username, 14),
				e.Role,
				e.RoleEmployee)
		}
	},
}

var employeesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single employee",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		employee, err := controller.NewEmployees(a.client, a.sess).Get(context.Background(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Employee #%d: %s\n", employee.ID, employee.Name)
		fmt.Printf("  Username: %s\n", employee.Username)
		fmt.Printf("  Role:     %s\n", employee.Role)
		if employee.RoleEmployee != "" {
			fmt.Printf("  Position: %s\n", employee.RoleEmployee)
		}
	},
}

var employeesCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an employee (PM only)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		position, _ := cmd.Flags().GetString("position")

		employee := models.Employee{
			Name:         name,
			Username:     args[0],
			Password:     password,
			Role:         models.Role(role),
			RoleEmployee: models.EmployeeRole(position),
		}
		if !employee.Role.Valid() {
			fmt.Printf("Error: role must be PM or EMPLOYEE, got %q\n", role)
			return
		}

		created, err := controller.NewEmployees(a.client, a.sess).Create(context.Background(), employee)
		if err != nil {
			fmt.Printf("Error creating employee: %v\n", err)
			return
		}
		fmt.Printf("Created employee #%d: %s\n", created.ID, created.Username)
	},
}

var employeesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an employee (PM only)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		ctx := context.Background()
		employees := controller.NewEmployees(a.client, a.sess)

		var form controller.Form
		employee, err := employees.BeginEdit(ctx, &form, id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			employee.Name = name
		}
		if role, _ := cmd.Flags().GetString("role"); role != "" {
			employee.Role = models.Role(role)
			if !employee.Role.Valid() {
				fmt.Printf("Error: role must be PM or EMPLOYEE, got %q\n", role)
				return
			}
		}
		if position, _ := cmd.Flags().GetString("position"); position != "" {
			employee.RoleEmployee = models.EmployeeRole(position)
		}

		updated, err := employees.Update(ctx, *employee)
		if err != nil {
			fmt.Printf("Error updating employee: %v\n", err)
			return
		}
		form.Close()
		fmt.Printf("Updated employee #%d: %s\n", updated.ID, updated.Username)
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee (PM only)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := controller.NewEmployees(a.client, a.sess).Delete(context.Background(), id); err != nil {
			fmt.Printf("Error deleting employee: %v\n", err)
			return
		}
		fmt.Printf("Deleted employee #%d\n", id)
	},
}

func init() {
	employeesCreateCmd.Flags().StringP("name", "n", "", "Full name")
	employeesCreateCmd.Flags().StringP("password", "p", "", "Initial password")
	employeesCreateCmd.Flags().StringP("role", "r", "EMPLOYEE", "Role: PM or EMPLOYEE")
	employeesCreateCmd.Flags().String("position", "", "Position, e.g. JUNIOR_DEVELOPER")
	employeesCreateCmd.MarkFlagRequired("password")

	employeesEditCmd.Flags().StringP("name", "n", "", "New name")
	employeesEditCmd.Flags().StringP("role", "r", "", "New role")
	employeesEditCmd.Flags().String("position", "", "New position")

	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesShowCmd)
	employeesCmd.AddCommand(employeesCreateCmd)
	employeesCmd.AddCommand(employeesEditCmd)
	employeesCmd.AddCommand(employeesDeleteCmd)
}
