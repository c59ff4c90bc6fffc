package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Source errors
	ErrSourceRead    = errors.New("source read failed")
	ErrMissingColumn = fmt.Errorf("%w: required column missing", ErrSourceRead)

	// Record errors
	ErrMalformedTime = errors.New("malformed time value")
	ErrUnknownStatus = errors.New("unrecognized solve status")

	// Statistics errors
	ErrNoValidSolves = errors.New("no valid solves in session")
)

// Error constructors with context
func NewSourceReadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceRead, path, err)
}

func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, column)
}

func NewMalformedTimeError(raw string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrMalformedTime, raw, err)
}

func NewUnknownStatusError(row int, status string) error {
	return fmt.Errorf("%w: row %d: %q", ErrUnknownStatus, row, status)
}

// Error checking helpers
func IsSourceReadError(err error) bool {
	return errors.Is(err, ErrSourceRead)
}

func IsMalformedTimeError(err error) bool {
	return errors.Is(err, ErrMalformedTime)
}

func IsNoValidSolvesError(err error) bool {
	return errors.Is(err, ErrNoValidSolves)
}
