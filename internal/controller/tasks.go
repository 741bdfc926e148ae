package controller

import (
	"context"
	"errors"

	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

// ErrMissingReferences is returned when a PM creates a task without the
// project and employee references the backend requires.
var ErrMissingReferences = errors.New("a task needs both a project and an assignee")

// Tasks carries the one genuinely non-obvious rule set in the client: PM
// may do everything, an employee may only move the status of a task
// assigned to them, and that submission must carry nothing but id and
// status.
type Tasks struct {
	client *api.Client
	sess   session.Session
}

// NewTasks creates a task controller bound to the given session.
func NewTasks(client *api.Client, sess session.Session) *Tasks {
	return &Tasks{client: client, sess: sess}
}

// List fetches the tasks visible to the current role.
func (t *Tasks) List(ctx context.Context) ([]models.Task, error) {
	if t.sess.IsPrivileged() {
		return t.client.ListTasks(ctx)
	}
	return t.client.ListTasksByEmployee(ctx, t.sess.SubjectID)
}

// Get fetches a single task by id.
func (t *Tasks) Get(ctx context.Context, id int64) (*models.Task, error) {
	return t.client.GetTask(ctx, id)
}

// Create creates a task. PM only, and both references must be supplied.
func (t *Tasks) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	if !CanCreateTasks(t.sess) {
		return nil, ErrForbidden
	}
	if task.Project == nil || task.Employee == nil {
		return nil, ErrMissingReferences
	}
	return t.client.CreateTask(ctx, task)
}

// Update replaces all task fields. PM only; an employee's sole write path
// is UpdateStatus.
func (t *Tasks) Update(ctx context.Context, task models.Task) (*models.Task, error) {
	if !t.sess.IsPrivileged() {
		return nil, ErrForbidden
	}
	return t.client.UpdateTask(ctx, task)
}

// UpdateStatus changes a task's status. For an employee the task must be
// assigned to them; the request body is exactly {id, status} so the partial
// update cannot revert title, description or due date.
func (t *Tasks) UpdateStatus(ctx context.Context, task models.Task, status models.TaskStatus) (*models.Task, error) {
	if !CanEditTask(t.sess, task) {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, errors.New("unknown task status: " + string(status))
	}
	return t.client.UpdateTaskStatus(ctx, models.TaskStatusUpdate{ID: task.ID, Status: status})
}

// Delete removes a task by id. PM only.
func (t *Tasks) Delete(ctx context.Context, id int64) error {
	if !t.sess.IsPrivileged() {
		return ErrForbidden
	}
	return t.client.DeleteTask(ctx, id)
}

// BeginCreate opens the form for a new task, PM only.
func (t *Tasks) BeginCreate(form *Form) error {
	if !CanCreateTasks(t.sess) {
		return ErrForbidden
	}
	return form.BeginCreate()
}

// BeginEdit loads the task and opens the form on it. PM gets the full-field
// edit; an employee gets the status-only owner edit, and only on their own
// task. A load failure aborts the transition with the form still hidden.
func (t *Tasks) BeginEdit(ctx context.Context, form *Form, id int64) (*models.Task, error) {
	task, err := t.client.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanEditTask(t.sess, *task) {
		return nil, ErrForbidden
	}
	if err := form.BeginEdit(t.sess.IsPrivileged()); err != nil {
		return nil, err
	}
	return task, nil
}
