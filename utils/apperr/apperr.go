// Package apperr holds the error kinds shared by services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	Validation
	NotFound
	Authorization
	AlreadyDrawn
	InsufficientParticipants
	Storage
	GuestsChanged
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Authorization:
		return "authorization"
	case AlreadyDrawn:
		return "already_drawn"
	case InsufficientParticipants:
		return "insufficient_participants"
	case Storage:
		return "storage"
	case GuestsChanged:
		return "guests_changed"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrValidation               = &Error{Kind: Validation}
	ErrNotFound                 = &Error{Kind: NotFound}
	ErrAuthorization            = &Error{Kind: Authorization}
	ErrAlreadyDrawn             = &Error{Kind: AlreadyDrawn}
	ErrInsufficientParticipants = &Error{Kind: InsufficientParticipants}
	ErrStorage                  = &Error{Kind: Storage}
	ErrGuestsChanged            = &Error{Kind: GuestsChanged}
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewValidation(format string, args ...any) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(msg string) error {
	return &Error{Kind: NotFound, Message: msg}
}

func NewAuthorization(msg string) error {
	return &Error{Kind: Authorization, Message: msg}
}

func NewAlreadyDrawn(msg string) error {
	return &Error{Kind: AlreadyDrawn, Message: msg}
}

func NewInsufficientParticipants(msg string) error {
	return &Error{Kind: InsufficientParticipants, Message: msg}
}

// NewGuestsChanged reports that the guest list moved while a draw was being committed.
// The draw can be retried.
func NewGuestsChanged(msg string) error {
	return &Error{Kind: GuestsChanged, Message: msg}
}

// NewStorage keeps the driver message verbatim so callers see what the database said.
func NewStorage(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Storage, Message: err.Error(), Err: err}
}

// KindOf reports the kind of err, or Unknown for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Message returns the user facing text of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	if s := err.Error(); s != "" {
		return s
	}
	return "Unknown error"
}
