package main

import (
	"log"
	"net/http"
	"os"

	"bookstore-backend/internal/auth"
	"bookstore-backend/internal/catalog"
	"bookstore-backend/internal/middleware"
	"bookstore-backend/internal/store"
)

var (
	svc    *catalog.Service
	tokens *auth.TokenIssuer
)

// newHandler builds the full route table wrapped in the logging and auth
// middleware. Tests reuse it against the same globals.
func newHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /user/register/{$}", handleRegisterUser)
	mux.HandleFunc("POST /user/login/{$}", handleLoginUser)

	mux.HandleFunc("GET /book/{$}", handleListBooks)
	mux.HandleFunc("POST /book/{$}", handleCreateBook)
	mux.HandleFunc("GET /book/{id}/{$}", handleGetBook)
	mux.HandleFunc("PATCH /book/{id}/{$}", handleUpdateBook)
	mux.HandleFunc("DELETE /book/{id}/{$}", handleDeleteBook)

	mux.HandleFunc("GET /book/{id}/page/{$}", handleListPages)
	mux.HandleFunc("POST /book/{id}/page/{$}", handleCreatePage)
	mux.HandleFunc("GET /book/{id}/page/{page}/{$}", handleGetPage)
	mux.HandleFunc("PATCH /book/{id}/page/{page}/{$}", handleUpdatePage)
	mux.HandleFunc("DELETE /book/{id}/page/{page}/{$}", handleDeletePage)

	mux.HandleFunc("GET /api/schema/{$}", handleSchema)
	mux.HandleFunc("GET /api/docs/{$}", handleDocs)
	mux.HandleFunc("GET /api/search", handleActiveSearch)

	mux.HandleFunc("/", handleNotFound)

	return middleware.Logging(middleware.Auth(tokens, svc, mux))
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("SECRET_TOKEN_KEY")
	if secret == "" {
		log.Fatal("SECRET_TOKEN_KEY environment variable not set")
	}
	tokens = auth.NewTokenIssuer(secret)

	var st catalog.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err := store.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("Failed to open postgres: %v", err)
		}
		defer conn.Close()
		st = store.NewPostgresStore(conn)
		log.Println("Using Postgres storage")
	} else {
		path := os.Getenv("BOOKS_DB_PATH")
		conn, err := store.OpenSQLite(path)
		if err != nil {
			log.Fatalf("Failed to open sqlite: %v", err)
		}
		defer conn.Close()
		st = store.NewSQLiteStore(conn)
		if path == "" {
			log.Println("Using in-memory SQLite storage")
		} else {
			log.Printf("Using SQLite storage at %s", path)
		}
	}
	svc = catalog.NewService(st)

	log.Printf("API Server started on :%s", port)
	if err := http.ListenAndServe(":"+port, newHandler()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
