package websocket

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTWebSocketAuth verifies an optional bearer token on the upgrade
// request and pre-binds the member identity it carries. A request without
// any token stays anonymous; only a present-but-invalid token is rejected.
// Token issuance belongs to the auth subsystem, not this package.
func JWTWebSocketAuth(secret string) AuthenticatorFunc {
	return func(r *http.Request) (int, error) {
		token := getTokenFromRequest(r)
		if token == "" {
			return 0, nil
		}

		claims := jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			return 0, &AuthError{Message: "invalid token"}
		}

		memberID, err := strconv.Atoi(claims.Subject)
		if err != nil || memberID <= 0 {
			return 0, &AuthError{Message: "token subject is not a member id"}
		}

		return memberID, nil
	}
}

func getTokenFromRequest(r *http.Request) string {
	// Option 1: Authorization header
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Option 2: Query parameter
	token := r.URL.Query().Get("token")
	if token != "" {
		return token
	}

	// Option 3: Cookie
	cookie, err := r.Cookie("access_token")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
