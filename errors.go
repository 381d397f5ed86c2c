// errors.go
package pydep

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound indicates a dependency key has no rule entry
	ErrKeyNotFound = errors.New("dependency key not found")

	// ErrManagerUnavailable indicates the package manager command could
	// not be located
	ErrManagerUnavailable = errors.New("package manager unavailable")

	// ErrMetadataNotFound indicates a package metadata lookup came back
	// empty
	ErrMetadataNotFound = errors.New("package metadata not found")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
