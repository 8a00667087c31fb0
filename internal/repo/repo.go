package repo

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on unique-constraint conflicts.
var ErrAlreadyExists = errors.New("already exists")

// ErrForbidden is returned when the actor fails the ownership or
// role check inside a transactional operation.
var ErrForbidden = errors.New("forbidden")
