package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteInput matches any IncompleteInputError via errors.Is.
	ErrIncompleteInput = errors.New("incomplete input")
	// ErrMissingAPIKey is returned when no API key can be resolved for the model.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrBusy is returned when an analysis is already in flight.
	ErrBusy = errors.New("analysis already in progress")
)

// ReferenceLoadError means the reference document could not be opened or read.
type ReferenceLoadError struct {
	Path string
	Err  error
}

func (e *ReferenceLoadError) Error() string {
	return fmt.Sprintf("Не удалось прочитать PDF %q: %v", e.Path, e.Err)
}

func (e *ReferenceLoadError) Unwrap() error {
	return e.Err
}

// IncompleteInputError lists the form fields left empty.
type IncompleteInputError struct {
	Missing []string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("incomplete input: missing %s", strings.Join(e.Missing, ", "))
}

func (e *IncompleteInputError) Is(target error) bool {
	return target == ErrIncompleteInput
}
