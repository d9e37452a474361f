package main

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// handleSchema serves an OpenAPI 3 description of the API.
func handleSchema(w http.ResponseWriter, r *http.Request) {
	schema := map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "Bookstore API",
			"version":     "1.0.0",
			"description": "JWT-authenticated REST API for users, books, and pages.",
		},
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"bearerAuth": map[string]interface{}{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
		"security": []map[string]interface{}{{"bearerAuth": []string{}}},
		"paths": map[string]interface{}{
			"/user/register/": map[string]interface{}{
				"post": operation("Register a new user", false),
			},
			"/user/login/": map[string]interface{}{
				"post": operation("Log in and receive a JWT", false),
			},
			"/book/": map[string]interface{}{
				"get":  operation("List all books", true),
				"post": operation("Create a book owned by the caller", true),
			},
			"/book/{id}/": map[string]interface{}{
				"get":    operation("Retrieve a single book", true),
				"patch":  operation("Partially update a book (author only)", true),
				"delete": operation("Delete a book (author only)", true),
			},
			"/book/{id}/page/": map[string]interface{}{
				"get":  operation("List pages of a book", true),
				"post": operation("Add a page to a book (author only)", true),
			},
			"/book/{id}/page/{page}/": map[string]interface{}{
				"get":    operation("Retrieve a single page", true),
				"patch":  operation("Partially update a page (author only)", true),
				"delete": operation("Delete a page (author only)", true),
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schema)
}

func operation(summary string, secured bool) map[string]interface{} {
	op := map[string]interface{}{
		"summary":   summary,
		"responses": map[string]interface{}{"200": map[string]interface{}{"description": "Envelope response"}},
	}
	if !secured {
		op["security"] = []map[string]interface{}{}
	}
	return op
}

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Bookstore API Docs</title>
	<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body>
	<h1>Bookstore API</h1>
	<p>Machine-readable schema: <a href="/api/schema/">/api/schema/</a></p>

	<h2>Live book search</h2>
	<div data-signals="{search: ''}">
		<input type="text" placeholder="Search books by title or author"
			data-bind-search
			data-on-input__debounce.300ms="@get('/api/search')">
		<div id="book-results"></div>
	</div>

	<h2>Endpoints</h2>
	<table border="1" cellpadding="4">
		<tr><th>Method</th><th>Path</th><th>Description</th><th>Auth</th></tr>
		{{range .}}
		<tr><td>{{.Method}}</td><td>{{.Path}}</td><td>{{.Summary}}</td><td>{{.Auth}}</td></tr>
		{{end}}
	</table>
</body>
</html>
`))

type docsEndpoint struct {
	Method  string
	Path    string
	Summary string
	Auth    string
}

var docsEndpoints = []docsEndpoint{
	{"POST", "/user/register/", "Register a new user", "none"},
	{"POST", "/user/login/", "Log in and receive a JWT", "none"},
	{"GET", "/book/", "List all books", "bearer"},
	{"POST", "/book/", "Create a book owned by the caller", "bearer"},
	{"GET", "/book/{id}/", "Retrieve a single book", "bearer"},
	{"PATCH", "/book/{id}/", "Partially update a book (author only)", "bearer"},
	{"DELETE", "/book/{id}/", "Delete a book (author only)", "bearer"},
	{"GET", "/book/{id}/page/", "List pages of a book", "bearer"},
	{"POST", "/book/{id}/page/", "Add a page to a book (author only)", "bearer"},
	{"GET", "/book/{id}/page/{page}/", "Retrieve a single page", "bearer"},
	{"PATCH", "/book/{id}/page/{page}/", "Partially update a page (author only)", "bearer"},
	{"DELETE", "/book/{id}/page/{page}/", "Delete a page (author only)", "bearer"},
}

func handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := docsTemplate.Execute(w, docsEndpoints); err != nil {
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}
