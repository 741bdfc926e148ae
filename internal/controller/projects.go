package controller

import (
	"context"

	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

// Projects decides, for the current session, which project records are
// fetched and which mutations are allowed.
type Projects struct {
	client *api.Client
	sess   session.Session
}

// NewProjects creates a project controller bound to the given session.
func NewProjects(client *api.Client, sess session.Session) *Projects {
	return &Projects{client: client, sess: sess}
}

// List fetches the projects visible to the current role: the full
// collection for PM, only the caller's assignments for an employee.
func (p *Projects) List(ctx context.Context) ([]models.Project, error) {
	if p.sess.IsPrivileged() {
		return p.client.ListProjects(ctx)
	}
	return p.client.ListProjectsForEmployee(ctx, p.sess.SubjectID)
}

// Get fetches a single project. Read access follows the list scope, so the
// backend decides; no client-side gate here.
func (p *Projects) Get(ctx context.Context, id int64) (*models.Project, error) {
	return p.client.GetProject(ctx, id)
}

// Create creates a project. PM only; rejected before any network call
// otherwise.
func (p *Projects) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	if !CanManageProjects(p.sess) {
		return nil, ErrForbidden
	}
	return p.client.CreateProject(ctx, project)
}

// Update replaces a project. PM only.
func (p *Projects) Update(ctx context.Context, project models.Project) (*models.Project, error) {
	if !CanManageProjects(p.sess) {
		return nil, ErrForbidden
	}
	return p.client.UpdateProject(ctx, project)
}

// Delete removes a project by id. PM only.
func (p *Projects) Delete(ctx context.Context, id int64) error {
	if !CanManageProjects(p.sess) {
		return ErrForbidden
	}
	return p.client.DeleteProject(ctx, id)
}

// BeginCreate opens the form for a new project, PM only.
func (p *Projects) BeginCreate(form *Form) error {
	if !CanManageProjects(p.sess) {
		return ErrForbidden
	}
	return form.BeginCreate()
}

// BeginEdit loads the project and opens the form on it. A load failure
// (including the record having been deleted by another session) aborts the
// transition: the form stays hidden and the error is reported.
func (p *Projects) BeginEdit(ctx context.Context, form *Form, id int64) (*models.Project, error) {
	if !CanManageProjects(p.sess) {
		return nil, ErrForbidden
	}
	project, err := p.client.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := form.BeginEdit(true); err != nil {
		return nil, err
	}
	return project, nil
}
