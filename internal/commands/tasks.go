package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/parser"
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "List and manage tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks visible to your role",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		tasks, err := controller.NewTasks(a.client, a.sess).List(context.Background())
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return
		}

		fmt.Printf("%-4s %-30s %-12s %-22s %-8s %s\n", "ID", "TITLE", "STATUS", "DUE", "PROJECT", "ASSIGNEE")
		fmt.Println(strings.Repeat("-", 92))
		for _, t := range tasks {
			fmt.Printf("%-4d %-30s %-12s %-22s %-8s %s\n",
				t.ID,
				truncate(t.Title, 28),
				t.Status,
				parser.FormatDate(t.DueDate),
				refLabel(t.Project),
				assigneeLabel(t.Employee))
		}
	},
}

var tasksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task",
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

		task, err := controller.NewTasks(a.client, a.sess).Get(context.Background(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("  Status:      %s\n", task.Status)
		fmt.Printf("  Due:         %s\n", parser.FormatDate(task.DueDate))
		fmt.Printf("  Project:     %s\n", refLabel(task.Project))
		fmt.Printf("  Assignee:    %s\n", assigneeLabel(task.Employee))
		fmt.Printf("  Description: %s\n", task.Description)
	},
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a task (PM only)",
	Long: `Create a task. Both --project and --employee are required: the backend
stores a task against a project and an assignee.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := requireLogin()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")
		due, _ := cmd.Flags().GetString("due")
		projectID, _ := cmd.Flags().GetInt64("project")
		employeeID, _ := cmd.Flags().GetInt64("employee")

		wireDate, err := parser.ParseDate(due)
		if err != nil {
			fmt.Printf("Error parsing due date: %v\n", err)
			return
		}

		task := models.Task{
			Title:       args[0],
			Description: description,
			Status:      models.TaskStatus(status),
			DueDate:     wireDate,
		}
		if projectID > 0 {
			task.Project = &models.ProjectRef{ID: projectID}
		}
		if employeeID > 0 {
			task.Employee = &models.EmployeeRef{ID: employeeID}
		}

		created, err := controller.NewTasks(a.client, a.sess).Create(context.Background(), task)
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}
		fmt.Printf("Created task #%d: %s\n", created.ID, created.Title)
	},
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's fields (PM only)",
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
		tasks := controller.NewTasks(a.client, a.sess)

		var form controller.Form
		task, err := tasks.BeginEdit(ctx, &form, id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if title, _ := cmd.Flags().GetString("title"); title != "" {
			task.Title = title
		}
		if description, _ := cmd.Flags().GetString("description"); description != "" {
			task.Description = description
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			task.Status = models.TaskStatus(status)
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			wireDate, err := parser.ParseDate(due)
			if err != nil {
				fmt.Printf("Error parsing due date: %v\n", err)
				return
			}
			task.DueDate = wireDate
		}
		if projectID, _ := cmd.Flags().GetInt64("project"); projectID > 0 {
			task.Project = &models.ProjectRef{ID: projectID}
		}
		if employeeID, _ := cmd.Flags().GetInt64("employee"); employeeID > 0 {
			task.Employee = &models.EmployeeRef{ID: employeeID}
		}

		updated, err := tasks.Update(ctx, *task)
		if err != nil {
			fmt.Printf("Error updating task: %v\n", err)
			return
		}
		form.Close()
		fmt.Printf("Updated task #%d: %s\n", updated.ID, updated.Title)
	},
}

var tasksStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a task's status",
	Long: `Change a task's status to TO_DO, IN_PROGRESS or COMPLETED.

This is the one write employees have, and only on tasks assigned to them.
The request carries just the id and the new status, nothing else.`,
	Args: cobra.ExactArgs(2),
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
		tasks := controller.NewTasks(a.client, a.sess)

		// The scoped list is the source of the record: an employee's list
		// only ever contains their own tasks, and the assignment check
		// runs against what the backend just returned.
		listed, err := tasks.List(ctx)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}
		var target *models.Task
		for i := range listed {
			if listed[i].ID == id {
				target = &listed[i]
				break
			}
		}
		if target == nil {
			fmt.Printf("Error: task #%d not found among your tasks\n", id)
			return
		}

		updated, err := tasks.UpdateStatus(ctx, *target, models.TaskStatus(args[1]))
		if err != nil {
			fmt.Printf("Error updating status: %v\n", err)
			return
		}
		fmt.Printf("Task #%d is now %s\n", updated.ID, updated.Status)
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task (PM only)",
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

		if err := controller.NewTasks(a.client, a.sess).Delete(context.Background(), id); err != nil {
			fmt.Printf("Error deleting task: %v\n", err)
			return
		}
		fmt.Printf("Deleted task #%d\n", id)
	},
}

func refLabel(ref *models.ProjectRef) string {
	if ref == nil {
		return "-"
	}
	return fmt.Sprintf("#%d", ref.ID)
}

func assigneeLabel(ref *models.EmployeeRef) string {
	if ref == nil {
		return "-"
	}
	return fmt.Sprintf("#%d", ref.ID)
}

func init() {
	tasksCreateCmd.Flags().StringP("description", "d", "", "Task description")
	tasksCreateCmd.Flags().StringP("status", "s", string(models.TaskToDo), "Status: TO_DO, IN_PROGRESS, COMPLETED")
	tasksCreateCmd.Flags().String("due", "", "Due date: yyyy-mm-dd, dd/mm/yyyy, X days, X weeks")
	tasksCreateCmd.Flags().Int64P("project", "p", 0, "Project id (required)")
	tasksCreateCmd.Flags().Int64P("employee", "e", 0, "Assignee employee id (required)")

	tasksEditCmd.Flags().StringP("title", "t", "", "New title")
	tasksEditCmd.Flags().StringP("description", "d", "", "New description")
	tasksEditCmd.Flags().StringP("status", "s", "", "New status")
	tasksEditCmd.Flags().String("due", "", "New due date")
	tasksEditCmd.Flags().Int64P("project", "p", 0, "New project id")
	tasksEditCmd.Flags().Int64P("employee", "e", 0, "New assignee id")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksShowCmd)
	tasksCmd.AddCommand(tasksCreateCmd)
	tasksCmd.AddCommand(tasksEditCmd)
	tasksCmd.AddCommand(tasksStatusCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)
}
