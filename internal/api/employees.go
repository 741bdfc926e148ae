package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/teamboard/teamboard/internal/models"
)

// ListEmployees fetches the full employee collection. The endpoint itself
// is privileged; callers gate on role before reaching here.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := c.do(ctx, http.MethodGet, "/getAllEmployees", nil, nil, &employees)
	return employees, err
}

// GetEmployee fetches a single employee by id.
func (c *Client) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	var employee models.Employee
	if err := c.do(ctx, http.MethodGet, "/getEmployeeById", query, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee creates an employee and returns the server-assigned record.
func (c *Client) CreateEmployee(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	var created models.Employee
	if err := c.do(ctx, http.MethodPost, "/createEmployee", nil, employee, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEmployee replaces an employee's fields by id.
func (c *Client) UpdateEmployee(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	var updated models.Employee
	if err := c.do(ctx, http.MethodPut, "/updateEmployee", nil, employee, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEmployee deletes an employee by id.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return c.do(ctx, http.MethodDelete, "/deleteEmployee", query, nil, nil)
}
