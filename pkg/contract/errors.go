package contract

import "errors"

var (
	ErrInvalidRoute    = errors.New("invalid contract route")
	ErrDuplicateRoute  = errors.New("duplicate contract route")
	ErrInvalidDocument = errors.New("invalid openapi document")
)
