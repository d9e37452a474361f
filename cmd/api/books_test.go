package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func createBook(t *testing.T, ts *httptest.Server, token, title string) int64 {
	t.Helper()
	code, env := doJSON(t, "POST", ts.URL+"/book/", token, map[string]interface{}{
		"title": title, "description": "desc", "price": 10.0,
	})
	if code != http.StatusCreated {
		t.Fatalf("Expected 201 for create book, got %d (%s)", code, env.Message)
	}
	return dataID(t, env)
}

func TestBooks_ListAndGet(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "a@example.com", "A")

	id := createBook(t, ts, token, "First Book")
	createBook(t, ts, token, "Second Book")

	code, env := doJSON(t, "GET", ts.URL+"/book/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	books, ok := env.Data.([]interface{})
	if !ok || len(books) != 2 {
		t.Fatalf("Expected 2 books, got %#v", env.Data)
	}

	code, env = doJSON(t, "GET", fmt.Sprintf("%s/book/%d/", ts.URL, id), token, nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200 for get book, got %d", code)
	}
	data := env.Data.(map[string]interface{})
	if data["title"] != "First Book" {
		t.Errorf("Title mismatch: %v", data["title"])
	}
	if data["author"] != "A" {
		t.Errorf("Expected author name in payload, got %v", data["author"])
	}
}

func TestBooks_GetMissing(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "a@example.com", "A")

	code, env := doJSON(t, "GET", ts.URL+"/book/999/", token, nil)
	if code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", code)
	}
	if env.Message != "Book not found" {
		t.Errorf("Unexpected message: %q", env.Message)
	}
}

func TestBooks_CreateInvalid(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "a@example.com", "A")

	code, env := doJSON(t, "POST", ts.URL+"/book/", token, map[string]interface{}{
		"description": "no title", "price": -1.0,
	})
	if code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", code)
	}
	if env.Message != "Invalid book data" {
		t.Errorf("Unexpected message: %q", env.Message)
	}
	if len(env.Errors["title"]) == 0 || len(env.Errors["price"]) == 0 {
		t.Errorf("Expected title and price errors, got %v", env.Errors)
	}
}

func TestBooks_UpdateByNonAuthorForbidden(t *testing.T) {
	ts := newTestServer(t)
	author := registerAndLogin(t, ts, "author@example.com", "Author")
	other := registerAndLogin(t, ts, "other@example.com", "Other")

	id := createBook(t, ts, author, "Owned Book")

	// Reads are allowed for any authenticated user.
	code, _ := doJSON(t, "GET", fmt.Sprintf("%s/book/%d/", ts.URL, id), other, nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200 for read by non-author, got %d", code)
	}

	// Writes are not.
	code, env := doJSON(t, "PATCH", fmt.Sprintf("%s/book/%d/", ts.URL, id), other, map[string]interface{}{
		"title": "Hijacked",
	})
	if code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", code)
	}
	if env.Message != "You do not have permission to update this book" {
		t.Errorf("Unexpected message: %q", env.Message)
	}

	code, _ = doJSON(t, "DELETE", fmt.Sprintf("%s/book/%d/", ts.URL, id), other, nil)
	if code != http.StatusForbidden {
		t.Fatalf("Expected 403 for delete by non-author, got %d", code)
	}
}

func TestBooks_DeleteReturnsRemaining(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "a@example.com", "A")

	first := createBook(t, ts, token, "Keep Me")
	second := createBook(t, ts, token, "Delete Me")

	code, env := doJSON(t, "DELETE", fmt.Sprintf("%s/book/%d/", ts.URL, second), token, nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	remaining, ok := env.Data.([]interface{})
	if !ok || len(remaining) != 1 {
		t.Fatalf("Expected 1 remaining book, got %#v", env.Data)
	}
	kept := remaining[0].(map[string]interface{})
	if int64(kept["id"].(float64)) != first {
		t.Errorf("Wrong book remained: %v", kept["id"])
	}
}
