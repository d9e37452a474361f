package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-backend/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	return New(*base, token)
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login/", r.URL.Path)

		var in models.LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "user@example.com", in.Email)

		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true, "message": "Login Successfully", "data": "jwt-token",
		})
	})

	client := newTestClient(t, handler, "")
	token, err := client.Login(context.Background(), "user@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "Invalid Credentials",
		})
	})

	client := newTestClient(t, handler, "")
	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Credentials")
}

func TestRegister_ValidationErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "data is not valid",
			"errors":  map[string][]string{"email": {"Enter a valid email address."}},
		})
	})

	client := newTestClient(t, handler, "")
	_, err := client.Register(context.Background(), "bad", "secret-password", "User")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data is not valid")
	assert.Contains(t, err.Error(), "email")
}

func TestCreateBook_SendsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/book/", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		writeEnvelope(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Book created successfully",
			"data":    models.Book{ID: 1, Title: "Title"},
		})
	})

	client := newTestClient(t, handler, "jwt-token")
	title := "Title"
	book, err := client.CreateBook(context.Background(), &models.BookInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, "Title", book.Title)
}

func TestListPages_PathScopedToBook(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/book/42/page/", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Pages retrieved successfully",
			"data":    []models.Page{{ID: 1, BookID: 42, PageNumber: 1}},
		})
	})

	client := newTestClient(t, handler, "jwt-token")
	pages, err := client.ListPages(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, int64(42), pages[0].BookID)
}

func TestDo_DecodesBadResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>gateway error</html>")
	})

	client := newTestClient(t, handler, "")
	_, err := client.ListBooks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode response")
}
