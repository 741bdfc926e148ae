package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/parser"
)

// formModel is the create/edit overlay for a single resource. Field values
// live in the inputs until a successful save; a failed save leaves them
// untouched.
type formModel struct {
	tab      Tab
	creating bool
	recordID int64

	labels []string
	inputs []textinput.Model
	focus  int

	validationErr string
}

func newFormInputs(placeholders []string) []textinput.Model {
	inputs := make([]textinput.Model, len(placeholders))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].CharLimit = 200
		inputs[i].Placeholder = placeholders[i]
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	return inputs
}

// newProjectForm builds the project form, prefilled when record is non-nil.
func newProjectForm(record *models.Project) *formModel {
	f := &formModel{
		tab:      TabProjects,
		creating: record == nil,
		labels:   []string{"Name", "Description", "Status", "End date"},
		inputs: newFormInputs([]string{
			"Project name (required)",
			"Description",
			"NOT_STARTED / IN_PROGRESS / COMPLETED",
			"yyyy-mm-dd, dd/mm/yyyy, X days, X weeks",
		}),
	}
	if record != nil {
		f.recordID = record.ID
		f.inputs[0].SetValue(record.Name)
		f.inputs[1].SetValue(record.Description)
		f.inputs[2].SetValue(string(record.Status))
		f.inputs[3].SetValue(record.EndDate)
	}
	f.inputs[0].Focus()
	return f
}

// newTaskForm builds the full-field task form used by PM.
func newTaskForm(record *models.Task) *formModel {
	f := &formModel{
		tab:      TabTasks,
		creating: record == nil,
		labels:   []string{"Title", "Description", "Status", "Due date", "Project id", "Assignee id"},
		inputs: newFormInputs([]string{
			"Task title (required)",
			"Description",
			"TO_DO / IN_PROGRESS / COMPLETED",
			"yyyy-mm-dd, dd/mm/yyyy, X days, X weeks",
			"Numeric project id (required)",
			"Numeric employee id (required)",
		}),
	}
	if record != nil {
		f.recordID = record.ID
		f.inputs[0].SetValue(record.Title)
		f.inputs[1].SetValue(record.Description)
		f.inputs[2].SetValue(string(record.Status))
		f.inputs[3].SetValue(record.DueDate)
		if record.Project != nil {
			f.inputs[4].SetValue(strconv.FormatInt(record.Project.ID, 10))
		}
		if record.Employee != nil {
			f.inputs[5].SetValue(strconv.FormatInt(record.Employee.ID, 10))
		}
	}
	f.inputs[0].Focus()
	return f
}

// newEmployeeForm builds the employee form. The password field only exists
// on create; edits never resend a password.
func newEmployeeForm(record *models.Employee) *formModel {
	labels := []string{"Name", "Username", "Password", "Role", "Position"}
	placeholders := []string{
		"Full name",
		"Login username (required)",
		"Initial password (required)",
		"PM / EMPLOYEE",
		"e.g. JUNIOR_DEVELOPER (employees only)",
	}
	if record != nil {
		labels = []string{"Name", "Username", "Role", "Position"}
		placeholders = []string{placeholders[0], placeholders[1], placeholders[3], placeholders[4]}
	}

	f := &formModel{
		tab:      TabEmployees,
		creating: record == nil,
		labels:   labels,
		inputs:   newFormInputs(placeholders),
	}
	if record != nil {
		f.recordID = record.ID
		f.inputs[0].SetValue(record.Name)
		f.inputs[1].SetValue(record.Username)
		f.inputs[2].SetValue(string(record.Role))
		f.inputs[3].SetValue(string(record.RoleEmployee))
	}
	f.inputs[0].Focus()
	return f
}

// Focus returns the blink command for the focused input.
func (f *formModel) Focus() tea.Cmd {
	return textinput.Blink
}

func (f *formModel) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

func (f *formModel) nextField() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

func (f *formModel) prevField() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + len(f.inputs) - 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

func (f *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.validationErr = ""
	return cmd
}

func (f *formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// projectValue assembles a project from the form fields.
func (f *formModel) projectValue() (models.Project, error) {
	project := models.Project{
		ID:          f.recordID,
		Name:        f.value(0),
		Description: f.value(1),
		Status:      models.ProjectStatus(f.value(2)),
	}
	if project.Name == "" {
		return models.Project{}, fmt.Errorf("name is required")
	}
	if project.Status == "" {
		project.Status = models.ProjectNotStarted
	}
	if !project.Status.Valid() {
		return models.Project{}, fmt.Errorf("unknown status %q", f.value(2))
	}

	endDate, err := parser.ParseDate(f.value(3))
	if err != nil {
		return models.Project{}, err
	}
	project.EndDate = endDate

	return project, nil
}

// taskValue assembles a task from the form fields.
func (f *formModel) taskValue() (models.Task, error) {
	task := models.Task{
		ID:          f.recordID,
		Title:       f.value(0),
		Description: f.value(1),
		Status:      models.TaskStatus(f.value(2)),
	}
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("title is required")
	}
	if task.Status == "" {
		task.Status = models.TaskToDo
	}
	if !task.Status.Valid() {
		return models.Task{}, fmt.Errorf("unknown status %q", f.value(2))
	}

	dueDate, err := parser.ParseDate(f.value(3))
	if err != nil {
		return models.Task{}, err
	}
	task.DueDate = dueDate

	if v := f.value(4); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return models.Task{}, fmt.Errorf("invalid project id %q", v)
		}
		task.Project = &models.ProjectRef{ID: id}
	}
	if v := f.value(5); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return models.Task{}, fmt.Errorf("invalid employee id %q", v)
		}
		task.Employee = &models.EmployeeRef{ID: id}
	}

	return task, nil
}

// employeeValue assembles an employee from the form fields.
func (f *formModel) employeeValue() (models.Employee, error) {
	var employee models.Employee
	if f.creating {
		employee = models.Employee{
			Name:         f.value(0),
			Username:     f.value(1),
			Password:     f.value(2),
			Role:         models.Role(f.value(3)),
			RoleEmployee: models.EmployeeRole(f.value(4)),
		}
		if employee.Password == "" {
			return models.Employee{}, fmt.Errorf("password is required")
		}
	} else {
		employee = models.Employee{
			ID:           f.recordID,
			Name:         f.value(0),
			Username:     f.value(1),
			Role:         models.Role(f.value(2)),
			RoleEmployee: models.EmployeeRole(f.value(3)),
		}
	}

	if employee.Username == "" {
		return models.Employee{}, fmt.Errorf("username is required")
	}
	if !employee.Role.Valid() {
		return models.Employee{}, fmt.Errorf("role must be PM or EMPLOYEE")
	}

	return employee, nil
}

// View renders the form.
func (f *formModel) View(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusedLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	resource := strings.TrimSuffix(f.tab.title(), "s")
	title := "New " + strings.ToLower(resource)
	if !f.creating {
		title = fmt.Sprintf("Edit %s #%d", strings.ToLower(resource), f.recordID)
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(title) + "\n\n")

	for i, input := range f.inputs {
		style := labelStyle
		if i == f.focus {
			style = focusedLabelStyle
		}
		b.WriteString("  " + style.Render(fmt.Sprintf("%-12s", f.labels[i])) + input.View() + "\n")
	}

	if f.validationErr != "" {
		b.WriteString("\n  " + errStyle.Render(f.validationErr) + "\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)
	if width > 70 {
		boxStyle = boxStyle.Width(70)
	}

	return boxStyle.Render(b.String())
}
