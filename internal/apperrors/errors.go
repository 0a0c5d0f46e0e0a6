package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an infrastructure failure (storage, connectivity).
// It is deliberately opaque: lower-level causes are wrapped so callers can
// distinguish infrastructure failures from the domain error taxonomy.
var ErrInternal = errors.New("internal error")
