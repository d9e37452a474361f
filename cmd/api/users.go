package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-backend/internal/catalog"
	"bookstore-backend/internal/models"
)

func handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "data is not valid", Error: err.Error(),
		})
		return
	}

	user, err := svc.Register(r.Context(), &in)
	if err != nil {
		respondServiceError(w, err, serviceMessages{
			invalid: "data is not valid",
			failure: "Failed to create User",
		})
		return
	}

	respondData(w, http.StatusCreated, "User created successfully", user)
}

func handleLoginUser(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false, Message: "Invalid Credentials", Error: err.Error(),
		})
		return
	}

	user, err := svc.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, envelope{
				Success: false, Message: "Invalid Credentials", Error: err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false, Message: "Something wrong happens", Error: err.Error(),
		})
		return
	}

	token, err := tokens.Issue(user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false, Message: "Something wrong happens", Error: err.Error(),
		})
		return
	}

	respondData(w, http.StatusOK, "Login Successfully", token)
}
