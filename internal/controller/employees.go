package controller

import (
	"context"

	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

// Employees gates the employee directory. Everything here, the list
// included, is PM territory.
type Employees struct {
	client *api.Client
	sess   session.Session
}

// NewEmployees creates an employee controller bound to the given session.
func NewEmployees(client *api.Client, sess session.Session) *Employees {
	return &Employees{client: client, sess: sess}
}

// List fetches the employee directory for PM. For any other role the fetch
// is a no-op that issues no request at all: the endpoint itself is
// privileged, so there is nothing to scope down to.
func (e *Employees) List(ctx context.Context) ([]models.Employee, error) {
	if !CanManageEmployees(e.sess) {
		return nil, nil
	}
	return e.client.ListEmployees(ctx)
}

// Get fetches a single employee. PM only.
func (e *Employees) Get(ctx context.Context, id int64) (*models.Employee, error) {
	if !CanManageEmployees(e.sess) {
		return nil, ErrForbidden
	}
	return e.client.GetEmployee(ctx, id)
}

// Create creates an employee. PM only; rejected before any network call
// otherwise.
func (e *Employees) Create(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	if !CanManageEmployees(e.sess) {
		return nil, ErrForbidden
	}
	return e.client.CreateEmployee(ctx, employee)
}

// Update replaces an employee. PM only.
func (e *Employees) Update(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	if !CanManageEmployees(e.sess) {
		return nil, ErrForbidden
	}
	return e.client.UpdateEmployee(ctx, employee)
}

// Delete removes an employee by id. PM only.
func (e *Employees) Delete(ctx context.Context, id int64) error {
	if !CanManageEmployees(e.sess) {
		return ErrForbidden
	}
	return e.client.DeleteEmployee(ctx, id)
}

// BeginCreate opens the form for a new employee, PM only.
func (e *Employees) BeginCreate(form *Form) error {
	if !CanManageEmployees(e.sess) {
		return ErrForbidden
	}
	return form.BeginCreate()
}

// BeginEdit loads the employee and opens the form on it; a load failure
// aborts the transition.
func (e *Employees) BeginEdit(ctx context.Context, form *Form, id int64) (*models.Employee, error) {
	if !CanManageEmployees(e.sess) {
		return nil, ErrForbidden
	}
	employee, err := e.client.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := form.BeginEdit(true); err != nil {
		return nil, err
	}
	return employee, nil
}
