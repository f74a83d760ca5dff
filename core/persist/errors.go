package persist

import "errors"

var (
	ErrNotFound   = errors.New("persisted key not found")
	ErrInvalidKey = errors.New("invalid storage key")
	ErrEmptyDir   = errors.New("empty storage directory")
	ErrStorage    = errors.New("storage failure")
	ErrCorrupted  = errors.New("persisted state is corrupted")
)
