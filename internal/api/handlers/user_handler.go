package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avieira/taskdeck-be/internal/models"
	"github.com/avieira/taskdeck-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserPayload defines the structure for user creation requests.
type CreateUserPayload struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create handles new user creation.
//
// The response carries the stored row as-is, password hash included. That
// mirrors the system this replaces; whether to redact it there was never
// resolved, so the behavior is kept.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		respondError(w, http.StatusBadRequest, "name, role, email and password are required")
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Name, payload.Role, payload.Email, payload.Password)
	if err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to create user")
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, "Data inserted successfully!", user)
}

// GetAll handles retrieving every user, ordered by id.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	// sanitize
	for i := range users {
		users[i].PasswordHash = ""
	}

	respondJSON(w, http.StatusOK, "All data retrieved successfully!", users)
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("User with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("user_id", id).Msg("Failed to get user")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	// sanitize
	user.PasswordHash = ""

	respondJSON(w, http.StatusOK, fmt.Sprintf("User with id %d retrieved successfully!", id), user)
}

// Update handles a partial update of a user. Fields absent from the payload
// keep their stored values.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var payload models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("User with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("user_id", id).Msg("Failed to update user")
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	// sanitize
	user.PasswordHash = ""

	respondJSON(w, http.StatusOK, fmt.Sprintf("User with id %d updated successfully!", id), user)
}

// Delete handles the permanent deletion of a user. The schema cascades the
// delete to the user's todos.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("User with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("user_id", id).Msg("Failed to delete user")
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	// sanitize
	user.PasswordHash = ""

	respondJSON(w, http.StatusOK, fmt.Sprintf("User with name %s deleted successfully!", user.Name), user)
}
