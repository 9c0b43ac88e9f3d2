package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/models"
)

// todoService is the concrete implementation of TodoService.
// Input validation happens here; the ownership check itself lives in the
// repository, which scopes every query by the user ID this service passes
// through.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given TodoRepository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// CreateTodo validates and persists a new todo owned by userID.
// The owner is always taken from the authenticated identity, never from the
// request body.
//
// Returns ErrInvalidDataProvided when TodoName is empty.
func (t *todoService) CreateTodo(ctx context.Context, userID int64, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.TodoName == "" {
		log.Error().Int64("user_id", userID).Msg("invalid todo data provided")
		return models.Todo{}, ErrInvalidDataProvided
	}

	todo.UserID = userID

	createdTodo, err := t.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return createdTodo, nil
}

// GetTodos returns all todos owned by userID.
func (t *todoService) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	todos, err := t.todoRepository.GetTodos(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("todo listing ended with error")
		return nil, fmt.Errorf("todo listing ended with error: %w", err)
	}

	return todos, nil
}

// GetTodoByID returns the todo with the given id owned by userID, or a
// wrapped store.ErrTodoNotFound when it is not visible to the user.
func (t *todoService) GetTodoByID(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	todo, err := t.todoRepository.GetTodoByID(ctx, userID, todoID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo lookup ended with error")
		return models.Todo{}, fmt.Errorf("todo lookup ended with error: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update to the todo with the given id owned
// by userID.
func (t *todoService) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error {
	if err := t.todoRepository.UpdateTodo(ctx, userID, todoID, update); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo update ended with error")
		return fmt.Errorf("todo update ended with error: %w", err)
	}

	return nil
}

// DeleteTodo removes the todo with the given id owned by userID.
func (t *todoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	if err := t.todoRepository.DeleteTodo(ctx, userID, todoID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo deletion ended with error")
		return fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return nil
}
