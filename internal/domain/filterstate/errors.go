package filterstate

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidRange reports a malformed age range (lo > hi).
	ErrInvalidRange = errors.New("invalid age range")
)
