package controller

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotLoaded        = errors.New("no product loaded")
)

// OperationError is a failed user operation. Message is safe to show.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
