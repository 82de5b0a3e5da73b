package domain

import "errors"

// ErrInvalidInput marks failures the caller can fix by changing the
// request: unknown statement types, malformed payload values, a monitor
// started twice. Transports map it to a client error.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks lookups that name something that does not exist.
var ErrNotFound = errors.New("not found")
