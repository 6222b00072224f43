package contract

import (
	"errors"
	"fmt"
)

// The error taxonomy every rejected operation resolves to. Callers match with
// errors.Is; the message carries the specifics.
var (
	ErrUnauthorized                = errors.New("unauthorized")
	ErrInvalidState                = errors.New("invalid state")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrInsufficientUnlockedBalance = errors.New("insufficient unlocked balance")
	ErrInsufficientReputation      = errors.New("insufficient reputation")
	ErrAlreadyDone                 = errors.New("already done")
	ErrMismatch                    = errors.New("mismatch")
	ErrDeadlineNotReached          = errors.New("deadline not reached")
	ErrDeadlinePassed              = errors.New("deadline passed")
	ErrNotFound                    = errors.New("not found")
	ErrInvalidInput                = errors.New("invalid input")
)

// failf wraps a taxonomy kind with call-site detail so errors.Is still works.
func failf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
}
