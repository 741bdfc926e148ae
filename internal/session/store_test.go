package session

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamboard/teamboard/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "teamboard.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSetAndCurrent(t *testing.T) {
	store := openTestStore(t)

	token := signToken(t, jwt.MapClaims{"sub": "pm1", "role": "PM", "id": 7})
	sess, err := store.Set(token)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatal("expected an authenticated session")
	}
	if !sess.IsPrivileged() {
		t.Error("expected a PM session to be privileged")
	}

	got := store.Current()
	if got.Token != token {
		t.Errorf("expected persisted token to round-trip")
	}
	if got.Role != models.RolePM || got.Username != "pm1" || got.SubjectID != 7 {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamboard.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	token := signToken(t, jwt.MapClaims{"sub": "worker", "role": "EMPLOYEE", "id": 42})
	if _, err := store.Set(token); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got := reopened.Current()
	if got.Username != "worker" || got.SubjectID != 42 {
		t.Errorf("expected session to survive reopen, got %+v", got)
	}
}

func TestStoreSetReplacesPreviousSession(t *testing.T) {
	store := openTestStore(t)

	first := signToken(t, jwt.MapClaims{"sub": "pm1", "role": "PM", "id": 1})
	second := signToken(t, jwt.MapClaims{"sub": "worker", "role": "EMPLOYEE", "id": 2})

	if _, err := store.Set(first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := store.Set(second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := store.Current()
	if got.Username != "worker" {
		t.Errorf("expected the later session to win, got %+v", got)
	}
}

func TestStoreSetMalformedToken(t *testing.T) {
	store := openTestStore(t)

	// A previously valid session must not survive a bad replacement token
	valid := signToken(t, jwt.MapClaims{"sub": "pm1", "role": "PM", "id": 1})
	if _, err := store.Set(valid); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	sess, err := store.Set("garbage")
	if err != nil {
		t.Fatalf("Set with malformed token should not error, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Error("expected an unauthenticated session for a malformed token")
	}
	if store.Current().IsAuthenticated() {
		t.Error("expected nothing persisted for a malformed token")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	token := signToken(t, jwt.MapClaims{"sub": "pm1", "role": "PM", "id": 7})
	if _, err := store.Set(token); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	got := store.Current()
	if got.IsAuthenticated() {
		t.Error("expected an unauthenticated session after Clear")
	}
	if got.Token != "" || got.Role != "" || got.Username != "" || got.SubjectID != 0 {
		t.Errorf("expected all session fields cleared together, got %+v", got)
	}
	if store.Token() != "" {
		t.Error("expected an empty token source after Clear")
	}

	// Idempotent
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}
