package models

import "time"

// Todo represents a single to-do item owned by exactly one user.
// Ownership is enforced at the persistence layer: every query that touches
// a todo is scoped by its UserID, so items belonging to other users are
// never visible to a caller.
type Todo struct {
	// ID is the internal unique identifier of the todo item.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user (foreign key to users).
	UserID int64 `json:"userId"`

	// TodoName is the short title of the item. Required on creation.
	TodoName string `json:"todoName"`

	// Description is an optional free-form text describing the item.
	Description string `json:"description"`

	// DueDate is the timestamp by which the item should be completed.
	DueDate time.Time `json:"dueDate"`

	// CreatedAt and UpdatedAt are maintained by the persistence layer.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoUpdate describes a partial update of a todo item.
// Nil fields are left untouched; only non-nil fields are written.
type TodoUpdate struct {
	TodoName    *string    `json:"todoName"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}
