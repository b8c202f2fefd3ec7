package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityFull         = errors.New("capacity is full")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidPassengerType = errors.New("invalid passenger type")
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Key)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
