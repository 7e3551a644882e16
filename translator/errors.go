package translator

import (
	"errors"
	"fmt"
)

// Error kinds reported through *Error. Use errors.Is to detect them.
var (
	// ErrInvalidToken indicates a token that was not issued by the uid package.
	ErrInvalidToken = errors.New("translator: invalid token")

	// ErrDuplicateToken indicates a token that is already in the dictionary or
	// repeated within the batch.
	ErrDuplicateToken = errors.New("translator: duplicate token")

	// ErrDuplicateKey indicates a key that is already in the dictionary or
	// repeated within the batch.
	ErrDuplicateKey = errors.New("translator: duplicate key")

	// ErrInvalidKey indicates a key whose dynamic type cannot be hashed, for
	// example a slice stored in an interface key.
	ErrInvalidKey = errors.New("translator: invalid key")

	// ErrEmptyKey indicates a zero value key.
	ErrEmptyKey = errors.New("translator: empty key")

	// ErrNotFound is returned by lookups for an unknown token or key.
	ErrNotFound = errors.New("translator: not found")
)

// Error is the single error type returned by Translator operations.
type Error struct {
	Op      string
	Message string
	Kind    error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error { return e.Kind }

func newError(op string, kind error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}
