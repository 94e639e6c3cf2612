package repository

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrDataLoad covers a missing, unreadable or schema-invalid source.
	// Fatal at startup; there is no retry path for a static dataset.
	ErrDataLoad = errors.New("data load failed")
)
