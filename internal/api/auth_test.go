package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teamboard/teamboard/internal/models"
)

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	token := signToken(t, "pm1", "PM", 7)

	var gotContentType, gotUsername, gotPassword, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotUsername = r.PostFormValue("username")
		gotPassword = r.PostFormValue("password")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer server.Close()

	store := newTestStore(t)
	client := New(server.URL, 0, store.Token)
	gateway := NewGateway(client, store)

	sess, err := gateway.Login(context.Background(), "pm1", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if gotPath != "/auth/login" {
		t.Errorf("expected path /auth/login, got %s", gotPath)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("expected form content type, got %q", gotContentType)
	}
	if gotUsername != "pm1" || gotPassword != "pw" {
		t.Errorf("credentials did not travel in the body: user=%q pass=%q", gotUsername, gotPassword)
	}

	if sess.Role != models.RolePM || sess.Username != "pm1" || sess.SubjectID != 7 {
		t.Errorf("unexpected session: %+v", sess)
	}
	if store.Current().Token != token {
		t.Error("expected the session to be persisted")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	store := newTestStore(t)
	gateway := NewGateway(New(server.URL, 0, store.Token), store)

	_, err := gateway.Login(context.Background(), "pm1", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.Current().IsAuthenticated() {
		t.Error("expected no session after a failed login")
	}
}

func TestLoginUnusableToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "not-a-jwt"})
	}))
	defer server.Close()

	store := newTestStore(t)
	gateway := NewGateway(New(server.URL, 0, store.Token), store)

	if _, err := gateway.Login(context.Background(), "pm1", "pw"); err == nil {
		t.Fatal("expected an error for an undecodable token")
	}
	if store.Current().IsAuthenticated() {
		t.Error("expected no persisted session for an undecodable token")
	}
}

func TestRegisterPasswordMismatchNeverHitsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	store := newTestStore(t)
	gateway := NewGateway(New(server.URL, 0, store.Token), store)

	err := gateway.Register(context.Background(), RegisterRequest{
		Username: "new",
		Password: "one",
		Confirm:  "two",
		Role:     models.RoleEmployee,
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
	if requests != 0 {
		t.Errorf("expected no network calls, got %d", requests)
	}
}

func TestRegisterSendsProfile(t *testing.T) {
	var got models.Employee
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "Employee registered successfully")
	}))
	defer server.Close()

	store := newTestStore(t)
	gateway := NewGateway(New(server.URL, 0, store.Token), store)

	err := gateway.Register(context.Background(), RegisterRequest{
		Username:     "worker",
		Password:     "pw",
		Confirm:      "pw",
		Name:         "A Worker",
		Role:         models.RoleEmployee,
		RoleEmployee: models.EmployeeRoleJuniorDeveloper,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got.Username != "worker" || got.Password != "pw" || got.Name != "A Worker" {
		t.Errorf("unexpected profile payload: %+v", got)
	}
	if got.Role != models.RoleEmployee || got.RoleEmployee != models.EmployeeRoleJuniorDeveloper {
		t.Errorf("unexpected roles in payload: %+v", got)
	}
}

func TestRegisterConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, "username already taken")
	}))
	defer server.Close()

	store := newTestStore(t)
	gateway := NewGateway(New(server.URL, 0, store.Token), store)

	err := gateway.Register(context.Background(), RegisterRequest{
		Username: "dup",
		Password: "pw",
		Confirm:  "pw",
		Role:     models.RoleEmployee,
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestLogoutClearsSessionAndHeader(t *testing.T) {
	token := signToken(t, "pm1", "PM", 7)

	var lastAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := newTestStore(t)
	if _, err := store.Set(token); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	client := New(server.URL, 0, store.Token)
	gateway := NewGateway(client, store)

	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if lastAuth == "" {
		t.Fatal("expected an Authorization header before logout")
	}

	if err := gateway.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	// Idempotent
	if err := gateway.Logout(); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}

	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if lastAuth != "" {
		t.Errorf("expected no Authorization header after logout, got %q", lastAuth)
	}
}
