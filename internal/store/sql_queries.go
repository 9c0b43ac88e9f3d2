package store

import (
	"github.com/MKhiriev/go-todo-api/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createTodo = `INSERT INTO todos (user_id, todo_name, description, due_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, todo_name, description, due_date, created_at, updated_at;`

	getTodosByUser = `SELECT id, user_id, todo_name, description, due_date, created_at, updated_at
    FROM todos
    WHERE user_id = $1
    ORDER BY id;`

	getTodoByID = `SELECT id, user_id, todo_name, description, due_date, created_at, updated_at
    FROM todos
    WHERE user_id = $1 AND id = $2;`

	deleteTodo = `DELETE FROM todos
    WHERE user_id = $1 AND id = $2;`
)

// buildTodoUpdateQuery builds the partial UPDATE statement for a todo.
// Only the non-nil fields of update become SET clauses; updated_at is always
// touched. The WHERE clause is scoped by both id and user_id so the update
// can never reach another user's row.
func buildTodoUpdateQuery(userID, todoID int64, update models.TodoUpdate) (string, []any, error) {
	builder := squirrel.Update("todos").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": todoID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if update.TodoName != nil {
		builder = builder.Set("todo_name", *update.TodoName)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}

	return builder.ToSql()
}
