package service

import (
	"context"

	"github.com/MKhiriev/go-todo-api/models"
)

// AuthService covers the credential and token lifecycle: registration,
// login, token issuance, and token verification.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TodoService covers CRUD on todo items. Every operation takes the
// authenticated user's ID and operates only on that user's items.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, todo models.Todo) (models.Todo, error)
	GetTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	GetTodoByID(ctx context.Context, userID, todoID int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}
