package domain

import "errors"

var (
	// ErrNotFound returned by stores when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidEvent returned for events that can't be processed as sent
	ErrInvalidEvent = errors.New("invalid event")
)
