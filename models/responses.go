package models

// MessageResponse is the generic success envelope carrying only a
// human-readable message (e.g. "User Created Successfully").
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope used by the registration and login
// endpoints. The Error field holds a human-readable description; internal
// error details are never exposed through it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TodoListResponse wraps the full list of a user's todo items.
// Data is always a JSON array: an empty list serializes as [], not null.
type TodoListResponse struct {
	Data []Todo `json:"data"`
}

// TodoDataResponse wraps a single todo item, optionally together with a
// success message (e.g. on creation).
type TodoDataResponse struct {
	Message string `json:"message,omitempty"`
	Data    Todo   `json:"data"`
}
