package common

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("resource conflict") // e.g., email already registered
)
