package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/teamboard/teamboard/internal/models"
)

// ListTasks fetches the full task collection. PM only on the backend.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/getAllTasks", nil, nil, &tasks)
	return tasks, err
}

// ListTasksByEmployee fetches the tasks assigned to the given employee.
func (c *Client) ListTasksByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error) {
	query := url.Values{"employeeId": {strconv.FormatInt(employeeID, 10)}}
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/getTasksByEmployee", query, nil, &tasks)
	return tasks, err
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	var task models.Task
	if err := c.do(ctx, http.MethodGet, "/getTaskById", query, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task and returns the server-assigned record.
func (c *Client) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	var created models.Task
	if err := c.do(ctx, http.MethodPost, "/createTask", nil, task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask replaces a task's fields by id. PM edit path.
func (c *Client) UpdateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	var updated models.Task
	if err := c.do(ctx, http.MethodPut, "/updateTask", nil, task, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateTaskStatus submits the status-only update an employee is allowed to
// make on their own task. The body carries exactly {id, status}.
func (c *Client) UpdateTaskStatus(ctx context.Context, update models.TaskStatusUpdate) (*models.Task, error) {
	var updated models.Task
	if err := c.do(ctx, http.MethodPut, "/updateTask", nil, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask deletes a task by id.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return c.do(ctx, http.MethodDelete, "/deleteTask", query, nil, nil)
}
