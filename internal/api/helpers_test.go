package api

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/session"
)

func testProject() models.Project {
	return models.Project{
		Name:        "Website relaunch",
		Description: "New marketing site",
		Status:      models.ProjectInProgress,
		EndDate:     "2026-10-01",
	}
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "teamboard.db"))
	if err != nil {
		t.Fatalf("failed to open session store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func signToken(t *testing.T, username, role string, id int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": role,
		"id":   id,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
