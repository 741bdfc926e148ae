package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamboard/teamboard/internal/models"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestDecodeClaims(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "pm1",
		"role": "PM",
		"id":   7,
	})

	claims, ok := DecodeClaims(token)
	if !ok {
		t.Fatal("expected claims to decode")
	}
	if claims.Username != "pm1" {
		t.Errorf("expected username pm1, got %s", claims.Username)
	}
	if claims.Role != models.RolePM {
		t.Errorf("expected role PM, got %s", claims.Role)
	}
	if claims.SubjectID != 7 {
		t.Errorf("expected subject id 7, got %d", claims.SubjectID)
	}
}

func TestDecodeClaimsEmployee(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "worker",
		"role": "EMPLOYEE",
		"id":   42,
	})

	claims, ok := DecodeClaims(token)
	if !ok {
		t.Fatal("expected claims to decode")
	}
	if claims.Role != models.RoleEmployee {
		t.Errorf("expected role EMPLOYEE, got %s", claims.Role)
	}
	if claims.SubjectID != 42 {
		t.Errorf("expected subject id 42, got %d", claims.SubjectID)
	}
}

func TestDecodeClaimsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong segment count", token: "a.b"},
		{name: "bad base64", token: "!!!.!!!.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DecodeClaims(tt.token); ok {
				t.Errorf("expected decode of %q to fail", tt.token)
			}
		})
	}
}

func TestDecodeClaimsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "no subject", claims: jwt.MapClaims{"role": "PM", "id": 1}},
		{name: "no role", claims: jwt.MapClaims{"sub": "x", "id": 1}},
		{name: "unknown role", claims: jwt.MapClaims{"sub": "x", "role": "ADMIN", "id": 1}},
		{name: "no id", claims: jwt.MapClaims{"sub": "x", "role": "PM"}},
		{name: "id not a number", claims: jwt.MapClaims{"sub": "x", "role": "PM", "id": "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, tt.claims)
			if _, ok := DecodeClaims(token); ok {
				t.Error("expected decode to fail")
			}
		})
	}
}
