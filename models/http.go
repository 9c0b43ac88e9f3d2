package models

// RegisterRequest is the JSON body of POST /auth/register.
// All four fields are required; the handler rejects the request with
// HTTP 400 when any of them is empty.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned on a successful login.
// User carries only public fields; the password hash is never serialized.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
