package message

import "errors"

var (
	ErrInvalidTarget    = errors.New("invalid request target")
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrFailedToReadBody = errors.New("failed to read request body")
	ErrNotAResponse     = errors.New("message is not a response")
)
