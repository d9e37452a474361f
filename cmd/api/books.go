package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookstore-backend/internal/middleware"
	"bookstore-backend/internal/models"
)

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil && id > 0
}

func handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := svc.ListBooks(r.Context())
	if err != nil {
		respondServiceError(w, err, serviceMessages{failure: "Failed to retrieve books"})
		return
	}
	respondData(w, http.StatusOK, "Books retrieved successfully", books)
}

func handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		handleNotFound(w, r)
		return
	}

	book, err := svc.GetBook(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			notFound: "Book not found",
			failure:  "Failed to retrieve books",
		})
		return
	}
	respondData(w, http.StatusOK, "Books retrieved successfully", book)
}

func handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var in models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "Invalid book data", Error: err.Error(),
		})
		return
	}

	user := middleware.UserFrom(r.Context())
	book, err := svc.CreateBook(r.Context(), user, &in)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			invalid: "Invalid book data",
			failure: "Failed to create book",
		})
		return
	}
	respondData(w, http.StatusCreated, "Book created successfully", book)
}

func handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		handleNotFound(w, r)
		return
	}

	var in models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "Invalid book data", Error: err.Error(),
		})
		return
	}

	user := middleware.UserFrom(r.Context())
	book, err := svc.UpdateBook(r.Context(), user, id, &in)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			invalid:   "Invalid book data",
			notFound:  "Book not found",
			forbidden: "You do not have permission to update this book",
			failure:   "Failed to update book",
		})
		return
	}
	respondData(w, http.StatusOK, "Book updated successfully", book)
}

func handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		handleNotFound(w, r)
		return
	}

	user := middleware.UserFrom(r.Context())
	remaining, err := svc.DeleteBook(r.Context(), user, id)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			notFound:  "Book not found",
			forbidden: "You do not have permission to delete this book",
			failure:   "Failed to delete book",
		})
		return
	}
	respondData(w, http.StatusOK, "Book deleted successfully", remaining)
}
