package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open the full-screen dashboard with tabbed views over projects, tasks
and employees. What you see and what you can change follows your role.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		err = tui.RunDashboard(
			a.sess,
			controller.NewProjects(a.client, a.sess),
			controller.NewTasks(a.client, a.sess),
			controller.NewEmployees(a.client, a.sess),
		)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
