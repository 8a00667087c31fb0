package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrForbidden is returned when the actor is authenticated but not
// permitted to touch the resource.
var ErrForbidden = errors.New("forbidden")
