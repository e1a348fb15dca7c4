package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks at the transport boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFoundError carries the resource-specific message for a missing entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a uniqueness violation, including duplicate ids
// supplied inside a relation array.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Detail)
}

func (e ConflictError) Is(target error) bool { return target == ErrConflict }

// InvalidReferenceError reports a relation id that does not resolve to an
// existing entity of the expected type.
type InvalidReferenceError struct {
	Resource string
	ID       string
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Resource, e.ID)
}

func (e InvalidReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// ValidationError reports input that fails a field-level rule, such as an
// enum value outside its set. Callers that come through the HTTP schema never
// trigger it; the CLI and SDK paths can.
type ValidationError struct {
	Field  string
	Detail string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

func (e ValidationError) Is(target error) bool { return target == ErrInvalidInput }
