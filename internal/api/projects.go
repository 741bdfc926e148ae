package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/teamboard/teamboard/internal/models"
)

// ListProjects fetches the full project collection. PM only on the backend.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/getAllProjects", nil, nil, &projects)
	return projects, err
}

// ListProjectsForEmployee fetches the projects the given employee is
// assigned to.
func (c *Client) ListProjectsForEmployee(ctx context.Context, employeeID int64) ([]models.Project, error) {
	query := url.Values{"employeeId": {strconv.FormatInt(employeeID, 10)}}
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/getProjectsForEmployee", query, nil, &projects)
	return projects, err
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	var project models.Project
	if err := c.do(ctx, http.MethodGet, "/getProjectById", query, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project and returns the server-assigned record.
func (c *Client) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	var created models.Project
	if err := c.do(ctx, http.MethodPost, "/createProject", nil, project, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject replaces a project's fields by id.
func (c *Client) UpdateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	var updated models.Project
	if err := c.do(ctx, http.MethodPut, "/updateProject", nil, project, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject deletes a project by id.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return c.do(ctx, http.MethodDelete, "/deleteProject", query, nil, nil)
}
