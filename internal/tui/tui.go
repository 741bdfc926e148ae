package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/session"
)

// RunDashboard starts the interactive dashboard for the given session.
func RunDashboard(sess session.Session, projects *controller.Projects, tasks *controller.Tasks, employees *controller.Employees) error {
	model := NewDashboardModel(sess, projects, tasks, employees)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
