package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-backend/internal/auth"
	"bookstore-backend/internal/models"
)

type stubLoader struct {
	users map[int64]*models.User
}

func (l *stubLoader) GetUser(_ context.Context, id int64) (*models.User, error) {
	user, ok := l.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return user, nil
}

func authHarness(t *testing.T) (*auth.TokenIssuer, http.Handler, *models.User) {
	t.Helper()
	issuer := auth.NewTokenIssuer("test-secret")
	user := &models.User{ID: 7, Email: "user@example.com", Name: "User"}
	loader := &stubLoader{users: map[int64]*models.User{user.ID: user}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := UserFrom(r.Context()); u != nil {
			fmt.Fprintf(w, "user:%d", u.ID)
			return
		}
		fmt.Fprint(w, "anonymous")
	})
	return issuer, Auth(issuer, loader, next), user
}

func TestAuth_ValidToken(t *testing.T) {
	issuer, handler, user := authHarness(t)

	token, err := issuer.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/book/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user:7", rec.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	_, handler, _ := authHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/book/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success": false, "message": "Not Authenticated"}`, rec.Body.String())
}

func TestAuth_BadToken(t *testing.T) {
	_, handler, _ := authHarness(t)

	for _, header := range []string{
		"Bearer not-a-token",
		"Token whatever",
		"Bearer ",
	} {
		req := httptest.NewRequest(http.MethodGet, "/book/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	issuer, handler, _ := authHarness(t)

	token, err := issuer.Issue(12345)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/book/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExcludedPaths(t *testing.T) {
	_, handler, _ := authHarness(t)

	for _, path := range ExcludedPaths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "anonymous", rec.Body.String(), path)
	}
}
