package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/teamboard/teamboard/internal/models"
)

// Claims are the identity fields the backend embeds in its tokens. The
// client consumes them decode-only; signature verification stays on the
// backend, which treats the token as the authority on every request anyway.
type Claims struct {
	Username  string
	Role      models.Role
	SubjectID int64
}

// DecodeClaims extracts the claims from a token without verifying its
// signature. A malformed token or missing claims yields ok=false, never a
// panic: the caller simply proceeds as unauthenticated.
func DecodeClaims(token string) (Claims, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	username, _ := mapClaims["sub"].(string)
	roleStr, _ := mapClaims["role"].(string)

	// JSON numbers decode as float64
	var subjectID int64
	if id, ok := mapClaims["id"].(float64); ok {
		subjectID = int64(id)
	}

	claims := Claims{
		Username:  username,
		Role:      models.Role(roleStr),
		SubjectID: subjectID,
	}
	if claims.Username == "" || !claims.Role.Valid() || claims.SubjectID == 0 {
		return Claims{}, false
	}

	return claims, true
}
