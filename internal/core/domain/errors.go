package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown formatter name.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrHistoryDisabled indicates the history store is not configured.
	// Restore and run listing are unavailable without it.
	ErrHistoryDisabled = errors.New("history disabled")

	// Note service errors.
	//
	// Every failure talking to the note service wraps exactly one of these,
	// so callers can branch with errors.Is.

	// ErrConnection indicates the note service is unreachable.
	ErrConnection = errors.New("note service unreachable")

	// ErrTimeout indicates the note service did not respond in time.
	ErrTimeout = errors.New("note service timed out")

	// ErrProtocol indicates a malformed response or a service-reported error.
	ErrProtocol = errors.New("note service protocol error")

	// ErrApplication wraps any other failure, including invalid notes
	// handed to an update.
	ErrApplication = errors.New("note service application error")
)
