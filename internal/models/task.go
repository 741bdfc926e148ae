package models

// TaskStatus values accepted by the backend.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "TO_DO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is a status the backend accepts.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// ProjectRef is the nested project reference on a task. Only the id matters
// on the write path; responses may carry the full object and the extra
// fields are simply ignored.
type ProjectRef struct {
	ID int64 `json:"id"`
}

// EmployeeRef is the nested assignee reference on a task.
type EmployeeRef struct {
	ID int64 `json:"id"`
}

// Task mirrors the backend's task record.
type Task struct {
	ID          int64        `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	DueDate     string       `json:"dueDate"` // yyyy-mm-dd, as the backend serializes LocalDate
	Project     *ProjectRef  `json:"project,omitempty"`
	Employee    *EmployeeRef `json:"employee,omitempty"`
}

// AssignedTo reports whether the task is assigned to the given employee id.
func (t Task) AssignedTo(employeeID int64) bool {
	return t.Employee != nil && t.Employee.ID == employeeID
}

// TaskStatusUpdate is the payload an employee submits when changing the
// status of their own task. It deliberately carries nothing but id and
// status so a partial update can never revert title, description or due
// date, even against a full-replace backend.
type TaskStatusUpdate struct {
	ID     int64      `json:"id"`
	Status TaskStatus `json:"status"`
}
