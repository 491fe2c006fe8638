package utils

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrModelNoContent = errors.New("model returned no usable content")
	ErrDatabaseError  = errors.New("database error")
)
