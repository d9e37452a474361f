package main

import (
	"encoding/json"
	"net/http"

	"bookstore-backend/internal/middleware"
	"bookstore-backend/internal/models"
)

func handleListPages(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	if !ok {
		handleNotFound(w, r)
		return
	}

	pages, err := svc.ListPages(r.Context(), bookID)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			notFound: "Book not found",
			failure:  "Failed to retrieve pages",
		})
		return
	}
	respondData(w, http.StatusOK, "Pages retrieved successfully", pages)
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	pageID, ok2 := pathID(r, "page")
	if !ok || !ok2 {
		handleNotFound(w, r)
		return
	}

	page, err := svc.GetPage(r.Context(), bookID, pageID)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			notFound: "Page not found",
			failure:  "Failed to retrieve pages",
		})
		return
	}
	respondData(w, http.StatusOK, "Pages retrieved successfully", page)
}

func handleCreatePage(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	if !ok {
		handleNotFound(w, r)
		return
	}

	var in models.PageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "Invalid page data", Error: err.Error(),
		})
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := svc.CreatePage(r.Context(), user, bookID, &in)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			invalid:   "Invalid page data",
			notFound:  "Book not found",
			forbidden: "You are not authorized to update this page",
			failure:   "Failed to create page",
		})
		return
	}
	respondData(w, http.StatusCreated, "Page created successfully", page)
}

func handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	pageID, ok2 := pathID(r, "page")
	if !ok || !ok2 {
		handleNotFound(w, r)
		return
	}

	var in models.PageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "Invalid page data", Error: err.Error(),
		})
		return
	}

	user := middleware.UserFrom(r.Context())
	page, err := svc.UpdatePage(r.Context(), user, bookID, pageID, &in)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			invalid:   "Invalid page data",
			notFound:  "Page not found",
			forbidden: "You are not authorized to update this page",
			failure:   "Failed to update page",
		})
		return
	}
	respondData(w, http.StatusOK, "Page updated successfully", page)
}

func handleDeletePage(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	pageID, ok2 := pathID(r, "page")
	if !ok || !ok2 {
		handleNotFound(w, r)
		return
	}

	user := middleware.UserFrom(r.Context())
	if err := svc.DeletePage(r.Context(), user, bookID, pageID); err != nil {
		respondServiceError(w, err, serviceMessages{
			notFound:  "Page not found",
			forbidden: "You are not authorized to delete this page",
			failure:   "Failed to delete page",
		})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Page deleted successfully"})
}
