package middleware

import (
	"context"
	"net/http"
	"strings"

	"toolorder-be/internal/user"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
	ClaimsKey contextKey = "jwtClaims"
)

// AuthMiddleware parses a Bearer token when one is present and stores the
// claims in the request context. Requests without (or with invalid) tokens
// pass through anonymously; handlers decide whether identity is required.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserIDKey).(string)
	return uid, ok && uid != ""
}

// ClaimsFromContext returns the full token claims, if any.
func ClaimsFromContext(ctx context.Context) (*user.CustomClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*user.CustomClaims)
	return claims, ok
}

// IsAdmin reports whether the request carries an admin token.
func IsAdmin(ctx context.Context) bool {
	claims, ok := ClaimsFromContext(ctx)
	return ok && claims.Role == string(user.RoleAdmin)
}
