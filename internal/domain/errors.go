package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidCapacity      = errors.New("max participants must be greater than zero")
	ErrStartsAtInPast       = errors.New("event start time must be in the future")
)
