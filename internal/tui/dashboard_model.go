package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamboard/teamboard/internal/controller"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/parser"
	"github.com/teamboard/teamboard/internal/session"
)

// Tab identifies a resource view in the dashboard.
type Tab int

const (
	TabProjects Tab = iota
	TabTasks
	TabEmployees
)

func (t Tab) title() string {
	switch t {
	case TabProjects:
		return "Projects"
	case TabTasks:
		return "Tasks"
	case TabEmployees:
		return "Employees"
	}
	return ""
}

// Messages carrying asynchronous fetch/mutation results back to the UI.
// List responses fully replace the displayed rows; the last one to arrive
// wins.
type (
	projectsLoadedMsg struct {
		items []models.Project
		err   error
	}
	tasksLoadedMsg struct {
		items []models.Task
		err   error
	}
	employeesLoadedMsg struct {
		items []models.Employee
		err   error
	}
	projectEditLoadedMsg struct {
		record *models.Project
		err    error
	}
	taskEditLoadedMsg struct {
		record *models.Task
		err    error
	}
	employeeEditLoadedMsg struct {
		record *models.Employee
		err    error
	}
	mutationDoneMsg struct {
		tab  Tab
		info string
		err  error
	}
)

// statusPicker is the inline status selector, the only task write an
// employee gets.
type statusPicker struct {
	task    models.Task
	choices []models.TaskStatus
	index   int
}

// DashboardModel is the top-level TUI model: tabbed tables over the three
// resources, a form overlay for create/edit, a status picker and a delete
// confirmation.
type DashboardModel struct {
	width  int
	height int

	sess      session.Session
	projects  *controller.Projects
	tasks     *controller.Tasks
	employees *controller.Employees

	tab          Tab
	projectRows  []models.Project
	taskRows     []models.Task
	employeeRows []models.Employee
	selected     map[Tab]int

	forms  map[Tab]*controller.Form
	form   *formModel
	picker *statusPicker

	confirmDelete bool

	statusLine  string
	statusIsErr bool
}

// NewDashboardModel creates the dashboard for the given session and
// controllers.
func NewDashboardModel(sess session.Session, projects *controller.Projects, tasks *controller.Tasks, employees *controller.Employees) DashboardModel {
	return DashboardModel{
		sess:      sess,
		projects:  projects,
		tasks:     tasks,
		employees: employees,
		tab:       TabProjects,
		selected:  map[Tab]int{},
		forms: map[Tab]*controller.Form{
			TabProjects:  {},
			TabTasks:     {},
			TabEmployees: {},
		},
	}
}

// visibleTabs returns the tabs the current role may see at all.
func (m DashboardModel) visibleTabs() []Tab {
	if m.sess.IsPrivileged() {
		return []Tab{TabProjects, TabTasks, TabEmployees}
	}
	return []Tab{TabProjects, TabTasks}
}

// Init kicks off the initial fetches for every visible view.
func (m DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchProjects(), m.fetchTasks()}
	if m.sess.IsPrivileged() {
		cmds = append(cmds, m.fetchEmployees())
	}
	return tea.Batch(cmds...)
}

func (m DashboardModel) fetchProjects() tea.Cmd {
	return func() tea.Msg {
		items, err := m.projects.List(context.Background())
		return projectsLoadedMsg{items: items, err: err}
	}
}

func (m DashboardModel) fetchTasks() tea.Cmd {
	return func() tea.Msg {
		items, err := m.tasks.List(context.Background())
		return tasksLoadedMsg{items: items, err: err}
	}
}

func (m DashboardModel) fetchEmployees() tea.Cmd {
	return func() tea.Msg {
		items, err := m.employees.List(context.Background())
		return employeesLoadedMsg{items: items, err: err}
	}
}

func (m DashboardModel) refetch(tab Tab) tea.Cmd {
	switch tab {
	case TabProjects:
		return m.fetchProjects()
	case TabTasks:
		return m.fetchTasks()
	case TabEmployees:
		return m.fetchEmployees()
	}
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Failed to load projects: %v", msg.err)), nil
		}
		m.projectRows = msg.items
		m.clampSelection(TabProjects)
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Failed to load tasks: %v", msg.err)), nil
		}
		m.taskRows = msg.items
		m.clampSelection(TabTasks)
		return m, nil

	case employeesLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Failed to load employees: %v", msg.err)), nil
		}
		m.employeeRows = msg.items
		m.clampSelection(TabEmployees)
		return m, nil

	case projectEditLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Cannot edit: %v", msg.err)), nil
		}
		m.form = newProjectForm(msg.record)
		return m.clearStatus(), nil

	case taskEditLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Cannot edit: %v", msg.err)), nil
		}
		m.form = newTaskForm(msg.record)
		return m.clearStatus(), nil

	case employeeEditLoadedMsg:
		if msg.err != nil {
			return m.reportError(fmt.Sprintf("Cannot edit: %v", msg.err)), nil
		}
		m.form = newEmployeeForm(msg.record)
		return m.clearStatus(), nil

	case mutationDoneMsg:
		if msg.err != nil {
			// Failure leaves the UI state untouched: an open form keeps
			// the user's values so they can correct and resubmit.
			if m.form != nil {
				m.form.validationErr = msg.err.Error()
				return m, nil
			}
			return m.reportError(msg.err.Error()), nil
		}
		if m.form != nil {
			m.forms[m.form.tab].Close()
			m.form = nil
		}
		m.picker = nil
		m.statusLine = msg.info
		m.statusIsErr = false
		return m, m.refetch(msg.tab)

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		if m.confirmDelete {
			return m.updateConfirmDelete(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m DashboardModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "right", "l":
		return m.nextTab(), nil

	case "shift+tab", "left", "h":
		return m.prevTab(), nil

	case "1":
		m.tab = TabProjects
		return m.clearStatus(), nil
	case "2":
		m.tab = TabTasks
		return m.clearStatus(), nil
	case "3":
		if m.sess.IsPrivileged() {
			m.tab = TabEmployees
			return m.clearStatus(), nil
		}
		return m, nil

	case "up", "k":
		if m.selected[m.tab] > 0 {
			m.selected[m.tab]--
		}
		return m, nil

	case "down", "j":
		if m.selected[m.tab] < m.rowCount(m.tab)-1 {
			m.selected[m.tab]++
		}
		return m, nil

	case "r":
		return m.clearStatus(), m.refetch(m.tab)

	case "n":
		return m.beginCreate()

	case "e":
		return m.beginEdit()

	case "s":
		return m.beginStatusChange()

	case "d", "x":
		return m.beginDelete()
	}

	return m, nil
}

// beginCreate opens the create form, rejecting ineligible roles before
// anything else happens.
func (m DashboardModel) beginCreate() (tea.Model, tea.Cmd) {
	var err error
	switch m.tab {
	case TabProjects:
		err = m.projects.BeginCreate(m.forms[TabProjects])
	case TabTasks:
		err = m.tasks.BeginCreate(m.forms[TabTasks])
	case TabEmployees:
		err = m.employees.BeginCreate(m.forms[TabEmployees])
	}
	if err != nil {
		return m.reportError(fmt.Sprintf("Cannot create: %v", err)), nil
	}

	switch m.tab {
	case TabProjects:
		m.form = newProjectForm(nil)
	case TabTasks:
		m.form = newTaskForm(nil)
	case TabEmployees:
		m.form = newEmployeeForm(nil)
	}
	return m.clearStatus(), m.form.Focus()
}

// beginEdit loads the selected record and opens the form on it. The load
// happens first; if the record is gone, the form never opens.
func (m DashboardModel) beginEdit() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabProjects:
		project, ok := m.selectedProject()
		if !ok {
			return m, nil
		}
		form := m.forms[TabProjects]
		return m, func() tea.Msg {
			record, err := m.projects.BeginEdit(context.Background(), form, project.ID)
			return projectEditLoadedMsg{record: record, err: err}
		}
	case TabTasks:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if !m.sess.IsPrivileged() {
			// Employees edit status only, through the picker
			return m.beginStatusChange()
		}
		form := m.forms[TabTasks]
		return m, func() tea.Msg {
			record, err := m.tasks.BeginEdit(context.Background(), form, task.ID)
			return taskEditLoadedMsg{record: record, err: err}
		}
	case TabEmployees:
		employee, ok := m.selectedEmployee()
		if !ok {
			return m, nil
		}
		form := m.forms[TabEmployees]
		return m, func() tea.Msg {
			record, err := m.employees.BeginEdit(context.Background(), form, employee.ID)
			return employeeEditLoadedMsg{record: record, err: err}
		}
	}
	return m, nil
}

func (m DashboardModel) beginStatusChange() (tea.Model, tea.Cmd) {
	if m.tab != TabTasks {
		return m, nil
	}
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if !controller.CanEditTask(m.sess, task) {
		return m.reportError("You can only change the status of tasks assigned to you"), nil
	}

	picker := &statusPicker{
		task:    task,
		choices: []models.TaskStatus{models.TaskToDo, models.TaskInProgress, models.TaskCompleted},
	}
	for i, choice := range picker.choices {
		if choice == task.Status {
			picker.index = i
		}
	}
	m.picker = picker
	return m.clearStatus(), nil
}

func (m DashboardModel) beginDelete() (tea.Model, tea.Cmd) {
	if m.rowCount(m.tab) == 0 {
		return m, nil
	}
	if !m.sess.IsPrivileged() {
		return m.reportError("Only a PM can delete records"), nil
	}
	m.confirmDelete = true
	return m.clearStatus(), nil
}

func (m DashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmDelete = false
		return m, m.deleteSelected()
	case "n", "N", "esc":
		m.confirmDelete = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m DashboardModel) deleteSelected() tea.Cmd {
	tab := m.tab
	switch tab {
	case TabProjects:
		project, ok := m.selectedProject()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			err := m.projects.Delete(context.Background(), project.ID)
			return mutationDoneMsg{tab: tab, info: fmt.Sprintf("Deleted project #%d", project.ID), err: err}
		}
	case TabTasks:
		task, ok := m.selectedTask()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			err := m.tasks.Delete(context.Background(), task.ID)
			return mutationDoneMsg{tab: tab, info: fmt.Sprintf("Deleted task #%d", task.ID), err: err}
		}
	case TabEmployees:
		employee, ok := m.selectedEmployee()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			err := m.employees.Delete(context.Background(), employee.ID)
			return mutationDoneMsg{tab: tab, info: fmt.Sprintf("Deleted employee #%d", employee.ID), err: err}
		}
	}
	return nil
}

func (m DashboardModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	picker := m.picker
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.picker = nil
		return m, nil
	case "up", "k":
		if picker.index > 0 {
			picker.index--
		}
		return m, nil
	case "down", "j":
		if picker.index < len(picker.choices)-1 {
			picker.index++
		}
		return m, nil
	case "enter":
		task := picker.task
		status := picker.choices[picker.index]
		return m, func() tea.Msg {
			_, err := m.tasks.UpdateStatus(context.Background(), task, status)
			return mutationDoneMsg{tab: TabTasks, info: fmt.Sprintf("Task #%d is now %s", task.ID, status), err: err}
		}
	}
	return m, nil
}

func (m DashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.forms[m.form.tab].Close()
		m.form = nil
		return m, nil

	case "tab", "down":
		return m, m.form.nextField()

	case "shift+tab", "up":
		return m, m.form.prevField()

	case "enter":
		if !m.form.onLastField() {
			return m, m.form.nextField()
		}
		return m, m.submitForm()
	}

	return m, m.form.updateFocused(msg)
}

// submitForm validates the form and issues the save. Validation failures
// and backend failures both leave the form open with its values intact.
func (m DashboardModel) submitForm() tea.Cmd {
	form := m.form
	switch form.tab {
	case TabProjects:
		project, err := form.projectValue()
		if err != nil {
			form.validationErr = err.Error()
			return nil
		}
		creating := form.creating
		return func() tea.Msg {
			var saveErr error
			if creating {
				_, saveErr = m.projects.Create(context.Background(), project)
			} else {
				_, saveErr = m.projects.Update(context.Background(), project)
			}
			return mutationDoneMsg{tab: TabProjects, info: "Saved project " + project.Name, err: saveErr}
		}
	case TabTasks:
		task, err := form.taskValue()
		if err != nil {
			form.validationErr = err.Error()
			return nil
		}
		creating := form.creating
		return func() tea.Msg {
			var saveErr error
			if creating {
				_, saveErr = m.tasks.Create(context.Background(), task)
			} else {
				_, saveErr = m.tasks.Update(context.Background(), task)
			}
			return mutationDoneMsg{tab: TabTasks, info: "Saved task " + task.Title, err: saveErr}
		}
	case TabEmployees:
		employee, err := form.employeeValue()
		if err != nil {
			form.validationErr = err.Error()
			return nil
		}
		creating := form.creating
		return func() tea.Msg {
			var saveErr error
			if creating {
				_, saveErr = m.employees.Create(context.Background(), employee)
			} else {
				_, saveErr = m.employees.Update(context.Background(), employee)
			}
			return mutationDoneMsg{tab: TabEmployees, info: "Saved employee " + employee.Username, err: saveErr}
		}
	}
	return nil
}

func (m DashboardModel) nextTab() DashboardModel {
	tabs := m.visibleTabs()
	for i, t := range tabs {
		if t == m.tab {
			m.tab = tabs[(i+1)%len(tabs)]
			break
		}
	}
	return m.clearStatus()
}

func (m DashboardModel) prevTab() DashboardModel {
	tabs := m.visibleTabs()
	for i, t := range tabs {
		if t == m.tab {
			m.tab = tabs[(i+len(tabs)-1)%len(tabs)]
			break
		}
	}
	return m.clearStatus()
}

func (m DashboardModel) rowCount(tab Tab) int {
	switch tab {
	case TabProjects:
		return len(m.projectRows)
	case TabTasks:
		return len(m.taskRows)
	case TabEmployees:
		return len(m.employeeRows)
	}
	return 0
}

func (m *DashboardModel) clampSelection(tab Tab) {
	if m.selected[tab] >= m.rowCount(tab) {
		m.selected[tab] = m.rowCount(tab) - 1
	}
	if m.selected[tab] < 0 {
		m.selected[tab] = 0
	}
}

func (m DashboardModel) selectedProject() (models.Project, bool) {
	i := m.selected[TabProjects]
	if i < 0 || i >= len(m.projectRows) {
		return models.Project{}, false
	}
	return m.projectRows[i], true
}

func (m DashboardModel) selectedTask() (models.Task, bool) {
	i := m.selected[TabTasks]
	if i < 0 || i >= len(m.taskRows) {
		return models.Task{}, false
	}
	return m.taskRows[i], true
}

func (m DashboardModel) selectedEmployee() (models.Employee, bool) {
	i := m.selected[TabEmployees]
	if i < 0 || i >= len(m.employeeRows) {
		return models.Employee{}, false
	}
	return m.employeeRows[i], true
}

func (m DashboardModel) reportError(text string) DashboardModel {
	m.statusLine = text
	m.statusIsErr = true
	return m
}

func (m DashboardModel) clearStatus() DashboardModel {
	m.statusLine = ""
	m.statusIsErr = false
	return m
}

// View renders the TUI
func (m DashboardModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View(m.width))
	} else if m.picker != nil {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m DashboardModel) renderHeader() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	identityStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))

	var parts []string
	for i, t := range m.visibleTabs() {
		label := fmt.Sprintf("%d:%s", i+1, t.title())
		if t == m.tab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	identity := identityStyle.Render(fmt.Sprintf("%s (%s)", m.sess.Username, m.sess.Role))
	return strings.Join(parts, "  ") + "   " + identity
}

func (m DashboardModel) renderTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	var b strings.Builder
	switch m.tab {
	case TabProjects:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-26s %-12s %-22s %s", "ID", "NAME", "STATUS", "END DATE", "DESCRIPTION")))
		b.WriteString("\n")
		if len(m.projectRows) == 0 {
			b.WriteString("  No projects.\n")
		}
		for i, p := range m.projectRows {
			line := fmt.Sprintf("%-4d %-26s %-12s %-22s %s",
				p.ID, clip(p.Name, 24), p.Status, parser.FormatDate(p.EndDate), clip(p.Description, 30))
			b.WriteString(m.renderRow(line, i == m.selected[TabProjects], selectedStyle, rowStyle))
		}
	case TabTasks:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-28s %-12s %-22s %-8s %s", "ID", "TITLE", "STATUS", "DUE", "PROJECT", "ASSIGNEE")))
		b.WriteString("\n")
		if len(m.taskRows) == 0 {
			b.WriteString("  No tasks.\n")
		}
		for i, t := range m.taskRows {
			project := "-"
			if t.Project != nil {
				project = fmt.Sprintf("#%d", t.Project.ID)
			}
			assignee := "-"
			if t.Employee != nil {
				assignee = fmt.Sprintf("#%d", t.Employee.ID)
			}
			line := fmt.Sprintf("%-4d %-28s %-12s %-22s %-8s %s",
				t.ID, clip(t.Title, 26), t.Status, parser.FormatDate(t.DueDate), project, assignee)
			b.WriteString(m.renderRow(line, i == m.selected[TabTasks], selectedStyle, rowStyle))
		}
	case TabEmployees:
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-22s %-16s %-10s %s", "ID", "NAME", "USERNAME", "ROLE", "POSITION")))
		b.WriteString("\n")
		if len(m.employeeRows) == 0 {
			b.WriteString("  No employees.\n")
		}
		for i, e := range m.employeeRows {
			line := fmt.Sprintf("%-4d %-22s %-16s %-10s %s",
				e.ID, clip(e.Name, 20), clip(e.Username, 14), e.Role, e.RoleEmployee)
			b.WriteString(m.renderRow(line, i == m.selected[TabEmployees], selectedStyle, rowStyle))
		}
	}

	if m.confirmDelete {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("  Delete the selected record? (y/n)"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardModel) renderRow(line string, selected bool, selectedStyle, rowStyle lipgloss.Style) string {
	if selected {
		return selectedStyle.Render("› "+line) + "\n"
	}
	return rowStyle.Render("  "+line) + "\n"
}

func (m DashboardModel) renderPicker() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	choiceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Status for task #%d: %s", m.picker.task.ID, m.picker.task.Title)))
	b.WriteString("\n\n")
	for i, choice := range m.picker.choices {
		if i == m.picker.index {
			b.WriteString(activeStyle.Render("  › " + string(choice)))
		} else {
			b.WriteString(choiceStyle.Render("    " + string(choice)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderStatusLine() string {
	if m.statusLine == "" {
		return ""
	}
	color := ColorSuccess
	if m.statusIsErr {
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("  " + m.statusLine)
}

func (m DashboardModel) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	if m.form != nil {
		return helpStyle.Render("  tab/shift+tab: fields • enter: next/save • esc: cancel")
	}
	if m.picker != nil {
		return helpStyle.Render("  ↑/↓: choose • enter: apply • esc: cancel")
	}

	help := "  ↑/↓: select • tab: switch view • r: refresh • s: status • q: quit"
	if m.sess.IsPrivileged() {
		help = "  ↑/↓: select • tab: switch view • n: new • e: edit • d: delete • r: refresh • s: status • q: quit"
	}
	return helpStyle.Render(help)
}

// clip shortens s for table display.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
