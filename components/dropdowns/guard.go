package dropdowns

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTGuard validates a Bearer token signed with the shared HMAC secret.
// Missing or malformed credentials map to 401, a valid token with failed
// verification to 403.
func JWTGuard(secret []byte) GuardFunc {
	return func(r *http.Request) error {
		raw := bearerToken(r)
		if raw == "" {
			return StatusError{Code: http.StatusUnauthorized, Err: fmt.Errorf("missing bearer token")}
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return StatusError{Code: http.StatusForbidden, Err: fmt.Errorf("invalid token")}
		}
		return nil
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
