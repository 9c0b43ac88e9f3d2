package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/service"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	todos, err := h.services.TodoService.GetTodos(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during todo listing")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TodoListResponse{Data: todos}, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	var todo models.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdTodo, err := h.services.TodoService.CreateTodo(ctx, userID, todo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: "Todo name is required"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during todo creation")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TodoDataResponse{Message: "Todo created successfully", Data: createdTodo}, http.StatusCreated)
}

func (h *Handler) getTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	todoID, err := getTodoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid ID"}, http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.GetTodoByID(ctx, userID, todoID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTodoNotFound):
			log.Err(err).Int64("todo_id", todoID).Msg("todo not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Todo not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during todo lookup")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TodoDataResponse{Data: todo}, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	todoID, err := getTodoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid ID"}, http.StatusBadRequest)
		return
	}

	var update models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.TodoService.UpdateTodo(ctx, userID, todoID, update); err != nil {
		switch {
		case errors.Is(err, store.ErrTodoNotFound):
			log.Err(err).Int64("todo_id", todoID).Msg("todo not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Todo not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during todo update")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Todo updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	todoID, err := getTodoIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid todo id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid ID"}, http.StatusBadRequest)
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, userID, todoID); err != nil {
		switch {
		case errors.Is(err, store.ErrTodoNotFound):
			log.Err(err).Int64("todo_id", todoID).Msg("todo not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Todo not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during todo deletion")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// getTodoIDFromURL parses the {id} route parameter as a positive integer.
func getTodoIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
