package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

// Gateway performs login, registration and logout against the backend and
// owns the session store's write path. Everything else only reads it.
type Gateway struct {
	client *Client
	store  *session.Store
}

// NewGateway creates an auth gateway over the given client and store.
func NewGateway(client *Client, store *session.Store) *Gateway {
	return &Gateway{client: client, store: store}
}

// RegisterRequest is the new-account payload. Confirm is checked locally
// and never leaves the client.
type RegisterRequest struct {
	Username     string
	Password     string
	Confirm      string
	Name         string
	Role         models.Role
	RoleEmployee models.EmployeeRole
}

// Login authenticates with the backend. Credentials travel form-encoded in
// the request body, never in the URL path. On success the issued token is
// decoded and persisted as the current session.
func (g *Gateway) Login(ctx context.Context, username, password string) (session.Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := g.client.postForm(ctx, "/auth/login", form)
	if err != nil {
		return session.Session{}, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return session.Session{}, ErrInvalidCredentials
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return session.Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return session.Session{}, ErrInvalidCredentials
	}

	sess, err := g.store.Set(body.Token)
	if err != nil {
		return session.Session{}, err
	}
	if !sess.IsAuthenticated() {
		return session.Session{}, errors.New("login succeeded but the issued token carries no usable claims")
	}

	return sess, nil
}

// Register creates a new account. The password/confirmation check happens
// before any network call; backend validation errors are surfaced verbatim.
func (g *Gateway) Register(ctx context.Context, req RegisterRequest) error {
	if req.Password != req.Confirm {
		return ErrPasswordMismatch
	}

	profile := models.Employee{
		Name:         req.Name,
		Username:     req.Username,
		Password:     req.Password,
		Role:         req.Role,
		RoleEmployee: req.RoleEmployee,
	}

	err := g.client.do(ctx, http.MethodPost, "/auth/register", nil, profile, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusConflict {
			return fmt.Errorf("%w: %s", ErrConflict, statusErr.Body)
		}
		return err
	}

	return nil
}

// Logout clears the persisted session unconditionally. Idempotent.
func (g *Gateway) Logout() error {
	return g.store.Clear()
}
