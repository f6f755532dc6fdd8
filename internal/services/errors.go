package services

import (
	"errors"
	"fmt"
)

// The service layer reports failures through a small typed taxonomy so the
// HTTP layer has exactly one place that turns errors into user-facing flash
// messages. Anything that is not one of these types is treated as unexpected.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsPermission(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
