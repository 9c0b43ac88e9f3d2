package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
//
// Ownership is enforced here, not in the handlers: every query carries a
// `user_id = $owner` predicate, so a todo belonging to another user is never
// visible and surfaces as [ErrTodoNotFound]. Existence of other users'
// items does not leak through status codes.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo persists a new todo and returns the fully populated
// [models.Todo] with server-assigned fields (ID, CreatedAt, UpdatedAt)
// via the RETURNING clause of [createTodo].
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTodo, todo.UserID, todo.TodoName, todo.Description, todo.DueDate)

	if err := row.Scan(&todo.ID, &todo.UserID, &todo.TodoName, &todo.Description, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error: scanning error")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todo, nil
}

// GetTodos returns every todo owned by userID, ordered by id.
// A user without todos gets an empty, non-nil slice so the HTTP layer
// serializes an empty JSON array rather than null.
func (r *todoRepository) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTodosByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodos").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.TodoName, &todo.Description, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*todoRepository.GetTodos").Msg("error: scanning rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todos, nil
}

// GetTodoByID returns the todo with the given id owned by userID.
//
// A missing row, including a row owned by another user, is reported as
// [ErrTodoNotFound]; any other driver-level error is wrapped as an
// unexpected DB error.
func (r *todoRepository) GetTodoByID(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, getTodoByID, userID, todoID)

	if err := row.Scan(&todo.ID, &todo.UserID, &todo.TodoName, &todo.Description, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.GetTodoByID").Msg("error: scanning error")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies the non-nil fields of update to the todo with the given
// id owned by userID. The UPDATE statement is built dynamically with
// squirrel (see [buildTodoUpdateQuery]); zero affected rows means the todo
// is not visible to the user and reports [ErrTodoNotFound].
func (r *todoRepository) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTodoUpdateQuery(userID, todoID, update)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error: building update query")
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// DeleteTodo removes the todo with the given id owned by userID.
// Zero affected rows reports [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTodo, userID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
