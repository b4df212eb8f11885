package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned for any status change other than to Fulfilled.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidOrder rejects an order before any storage call is made.
	ErrInvalidOrder = errors.New("invalid order")
)

// DecodeError reports a stored payload that exists but cannot be parsed.
// It is never collapsed into "absent".
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func IsDecodeError(err error) bool {
	var d *DecodeError
	return errors.As(err, &d)
}
