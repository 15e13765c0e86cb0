package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound    = errors.New("not found")
	ErrWriteOutput = errors.New("cannot write output")
)

// ValidationError represents a configuration or parameter validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PublishError represents a failure writing generated documents; it is
// fatal to the run.
type PublishError struct {
	Dir    string
	Reason string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("cannot publish to %s: %s", e.Dir, e.Reason)
}

func (e *PublishError) Is(target error) bool {
	return target == ErrWriteOutput
}
