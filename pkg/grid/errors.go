package grid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrSameField is returned when the same parameter is requested for both rows and columns.
var ErrSameField = errors.New("row and column fields must differ")

// FieldNotFoundError is returned when a parameter name is not part of the space.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("Field %q does not exist", e.Field)
}

// InvalidCollaboratorError is returned when a reader, writer or sink cannot be used.
type InvalidCollaboratorError struct {
	Collaborator string
	Reason       string
}

func (e *InvalidCollaboratorError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Collaborator, e.Reason)
}

// AssignmentOutOfDomainError is returned when a lookup uses values outside the declared space.
// It signals a programming error on the caller side.
type AssignmentOutOfDomainError struct {
	Assignment Assignment
	Reason     string
}

func (e *AssignmentOutOfDomainError) Error() string {
	return fmt.Sprintf("assignment (%s) out of domain: %s", strings.Join(e.Assignment, ", "), e.Reason)
}

// IsFieldNotFound reports whether err (or its cause) is a FieldNotFoundError.
func IsFieldNotFound(err error) bool {
	_, ok := errors.Cause(err).(*FieldNotFoundError)
	return ok
}

// IsInvalidCollaborator reports whether err (or its cause) is an InvalidCollaboratorError.
func IsInvalidCollaborator(err error) bool {
	_, ok := errors.Cause(err).(*InvalidCollaboratorError)
	return ok
}

// IsAssignmentOutOfDomain reports whether err (or its cause) is an AssignmentOutOfDomainError.
func IsAssignmentOutOfDomain(err error) bool {
	_, ok := errors.Cause(err).(*AssignmentOutOfDomainError)
	return ok
}
