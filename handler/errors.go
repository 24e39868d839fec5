package handler

import "errors"

var (
	// ErrPanicRecovered wraps values recovered by the Recover decorator.
	ErrPanicRecovered = errors.New("handler panicked")
)
