package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the login endpoint rejects
	// the supplied username/password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch is returned by Register before any network call
	// when the password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrConflict is returned when registration hits an already-taken
	// username.
	ErrConflict = errors.New("already exists")
)

// StatusError is a non-2xx response from the backend. Body holds the raw
// error text; the backend answers with plain text for some endpoints and
// JSON for others, so no structure is assumed.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

func newStatusError(resp *http.Response) *StatusError {
	return &StatusError{
		Status: resp.StatusCode,
		Body:   readErrorBody(resp.Body),
	}
}

// IsNotFound reports whether err is a backend 404, e.g. a record deleted by
// another session between listing and loading it.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}
