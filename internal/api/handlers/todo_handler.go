package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avieira/taskdeck-be/internal/models"
	"github.com/avieira/taskdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

// TodoHandler handles HTTP requests for todo management.
type TodoHandler struct {
	service services.TodoServiceProvider
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service services.TodoServiceProvider) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles new todo creation.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.NewTodo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		respondError(w, http.StatusBadRequest, "user_id and title are required")
		return
	}

	todo, err := h.service.CreateTodo(r.Context(), payload)
	if err != nil {
		log.Error().Err(err).Int64("user_id", payload.UserID).Msg("Failed to create todo")
		respondError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	respondJSON(w, http.StatusCreated, "Data inserted successfully!", todo)
}

// GetAll handles retrieving every todo, ordered by id.
func (h *TodoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.GetAllTodos(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list todos")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve todos")
		return
	}

	respondJSON(w, http.StatusOK, "All data retrieved successfully!", todos)
}

// Get handles retrieving a todo by its ID.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	todo, err := h.service.GetTodoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Todo with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("todo_id", id).Msg("Failed to get todo")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve todo")
		return
	}

	respondJSON(w, http.StatusOK, fmt.Sprintf("Todo with id %d retrieved successfully!", id), todo)
}

// Update handles a partial update of a todo. Fields absent from the payload
// keep their stored values.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	var payload models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.service.UpdateTodo(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Todo with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("todo_id", id).Msg("Failed to update todo")
		respondError(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	respondJSON(w, http.StatusOK, fmt.Sprintf("Todo with id %d updated successfully!", id), todo)
}

// Delete handles the permanent deletion of a todo.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	todo, err := h.service.DeleteTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Todo with id %d not found!", id))
			return
		}
		log.Error().Err(err).Int64("todo_id", id).Msg("Failed to delete todo")
		respondError(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	respondJSON(w, http.StatusOK, fmt.Sprintf("Todo with title %s deleted successfully!", todo.Title), todo)
}
