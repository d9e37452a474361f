package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bookstore-backend/internal/auth"
	"bookstore-backend/internal/models"
)

type contextKey string

const UserKey contextKey = "user"

// UserLoader resolves the user a verified token was issued for.
type UserLoader interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// ExcludedPaths lists routes reachable without an Authorization header.
var ExcludedPaths = []string{
	"/user/register/",
	"/user/login/",
	"/api/schema/",
	"/api/docs/",
	"/api/search",
}

func excluded(path string) bool {
	for _, p := range ExcludedPaths {
		if path == p {
			return true
		}
	}
	return false
}

// Auth validates the Bearer token on every request whose path is not in
// ExcludedPaths, loads the user, and injects it into the request context
// under UserKey.
func Auth(issuer *auth.TokenIssuer, users UserLoader, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if excluded(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthenticated(w)
			return
		}

		userID, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthenticated(w)
			return
		}

		user, err := users.GetUser(r.Context(), userID)
		if err != nil {
			unauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Not Authenticated",
	})
}

// UserFrom returns the authenticated user stored in the context, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}
