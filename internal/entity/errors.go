package entity

import "errors"

// Error taxonomy shared by all usecases. Handlers translate these to HTTP
// status codes: ErrInvalidArgument -> 400, ErrNotFound -> 404,
// ErrAlreadyExists -> 409. Anything else is a storage failure -> 500.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
)
