package engine

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure so that callers can map each
// condition to a distinct response without parsing messages. Every kind
// is expected and recoverable; the engine never panics for them.
type Kind string

const (
	// Definition authoring failures
	KindDuplicateDefinition   Kind = "DuplicateDefinition"
	KindInvalidInitialState   Kind = "InvalidInitialState"
	KindUnknownStateReference Kind = "UnknownStateReference"

	// Reference failures
	KindDefinitionNotFound Kind = "DefinitionNotFound"
	KindInstanceNotFound   Kind = "InstanceNotFound"
	KindActionNotFound     Kind = "ActionNotFound"

	// Transition guard violations
	KindInstanceAlreadyFinal Kind = "InstanceAlreadyFinal"
	KindActionDisabled       Kind = "ActionDisabled"
	KindActionNotApplicable  Kind = "ActionNotApplicable"
)

// Error is the typed outcome value returned for every expected engine
// failure: a stable kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates an engine error with a formatted message.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from err; it returns the empty kind
// when err is nil or not an engine error.
func KindOf(err error) Kind {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the supplied kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
