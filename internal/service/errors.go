package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so the transport layer can map them to
// a status code without inspecting error text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindStorage
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindFilesystem:
		return "filesystem"
	default:
		return "internal"
	}
}

// Client-facing messages.
const (
	MsgMissingFields       = "Missing required fields"
	MsgInvalidEmail        = "Invalid email format"
	MsgInvalidPhone        = "Invalid phone number"
	MsgUnsupportedResume   = "Unsupported resume file type"
	MsgSubmissionNotFound  = "Submission not found"
	MsgApplicationNotFound = "Application not found"
	MsgInternal            = "Internal server error"
)

// Error is a classified service error. Message is safe to show to callers
// for validation and not-found kinds; Err carries the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFoundError(msg string, err error) error {
	return &Error{Kind: KindNotFound, Message: msg, Err: err}
}

func storageError(op string, err error) error {
	return &Error{Kind: KindStorage, Message: op, Err: err}
}

func filesystemError(op string, err error) error {
	return &Error{Kind: KindFilesystem, Message: op, Err: err}
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// PublicMessage returns the message that may be shown to a caller for err.
// Storage, filesystem and internal failures are reduced to MsgInternal.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && (se.Kind == KindValidation || se.Kind == KindNotFound) {
		return se.Message
	}
	return MsgInternal
}
