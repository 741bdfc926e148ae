package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/parser"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"project"},
	Short:   "List and manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects visible to your role",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		projects, err := controller.NewProjects(a.client, a.sess).List(context.Background())
		if err != nil {
			fmt.Printf("Error fetching projects: %v\n", err)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return
		}

		fmt.Printf("%-4s %-28s %-12s %-22s %s\n", "ID", "NAME", "STATUS", "END DATE", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 90))
		for _, p := range projects {
			fmt.Printf("%-4d %-28s %-12s %-22s %s\n",
				p.ID,
				truncate(p.Name, 26),
				p.Status,
				parser.FormatDate(p.EndDate),
				truncate(p.Description, 40))
		}
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single project",
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

		project, err := controller.NewProjects(a.client, a.sess).Get(context.Background(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Project #%d: %s\n", project.ID, project.Name)
		fmt.Printf("  Status:      %s\n", project.Status)
		fmt.Printf("  End date:    %s\n", parser.FormatDate(project.EndDate))
		fmt.Printf("  Description: %s\n", project.Description)
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project (PM only)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")
		endDate, _ := cmd.Flags().GetString("end-date")

		wireDate, err := parser.ParseDate(endDate)
		if err != nil {
			fmt.Printf("Error parsing end date: %v\n", err)
			return
		}

		project := models.Project{
			Name:        args[0],
			Description: description,
			Status:      models.ProjectStatus(status),
			EndDate:     wireDate,
		}

		created, err := controller.NewProjects(a.client, a.sess).Create(context.Background(), project)
		if err != nil {
			fmt.Printf("Error creating project: %v\n", err)
			return
		}
		fmt.Printf("Created project #%d: %s\n", created.ID, created.Name)
	},
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project (PM only)",
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
		projects := controller.NewProjects(a.client, a.sess)

		// Load current values first so unset flags keep them
		var form controller.Form
		project, err := projects.BeginEdit(ctx, &form, id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			project.Name = name
		}
		if description, _ := cmd.Flags().GetString("description"); description != "" {
			project.Description = description
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			project.Status = models.ProjectStatus(status)
		}
		if endDate, _ := cmd.Flags().GetString("end-date"); endDate != "" {
			wireDate, err := parser.ParseDate(endDate)
			if err != nil {
				fmt.Printf("Error parsing end date: %v\n", err)
				return
			}
			project.EndDate = wireDate
		}

		updated, err := projects.Update(ctx, *project)
		if err != nil {
			fmt.Printf("Error updating project: %v\n", err)
			return
		}
		form.Close()
		fmt.Printf("Updated project #%d: %s\n", updated.ID, updated.Name)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project (PM only)",
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

		if err := controller.NewProjects(a.client, a.sess).Delete(context.Background(), id); err != nil {
			fmt.Printf("Error deleting project: %v\n", err)
			return
		}
		fmt.Printf("Deleted project #%d\n", id)
	},
}

// parseID parses a numeric record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func init() {
	projectsCreateCmd.Flags().StringP("description", "d", "", "Project description")
	projectsCreateCmd.Flags().StringP("status", "s", string(models.ProjectNotStarted), "Status: NOT_STARTED, IN_PROGRESS, COMPLETED")
	projectsCreateCmd.Flags().StringP("end-date", "e", "", "End date: yyyy-mm-dd, dd/mm/yyyy, X days, X weeks")

	projectsEditCmd.Flags().StringP("name", "n", "", "New name")
	projectsEditCmd.Flags().StringP("description", "d", "", "New description")
	projectsEditCmd.Flags().StringP("status", "s", "", "New status")
	projectsEditCmd.Flags().StringP("end-date", "e", "", "New end date")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsEditCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
