package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-todo-api/models"
)

// UserRepository is the persistence contract of the credential store.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists when the email
	// unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email matches exactly.
	// Fails with ErrNoUserWasFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TodoRepository is the persistence contract for todo items.
//
// Every method takes the owning user's ID and scopes its query by it, so a
// todo belonging to another user behaves exactly like a missing one.
type TodoRepository interface {
	// CreateTodo persists a new todo owned by todo.UserID and returns it
	// with server-assigned fields populated.
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// GetTodos returns all todos owned by userID. The result is never nil:
	// a user without todos gets an empty slice.
	GetTodos(ctx context.Context, userID int64) ([]models.Todo, error)

	// GetTodoByID returns the todo with the given id owned by userID.
	// Fails with ErrTodoNotFound when no such row is visible to the user.
	GetTodoByID(ctx context.Context, userID, todoID int64) (models.Todo, error)

	// UpdateTodo applies the non-nil fields of update to the todo with the
	// given id owned by userID. Fails with ErrTodoNotFound when no row is
	// affected.
	UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error

	// DeleteTodo removes the todo with the given id owned by userID.
	// Fails with ErrTodoNotFound when no row is affected.
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}
