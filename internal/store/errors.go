// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	// The users.email unique constraint is the authoritative uniqueness check;
	// no pre-check is performed at the service level.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when a query or mutation targets a todo
	// (identified by id and user_id) that is not visible to the requesting
	// user. A todo owned by another user is indistinguishable from a missing
	// one: ownership is enforced by scoping every query with user_id.
	ErrTodoNotFound = errors.New("todo was not found")
)
