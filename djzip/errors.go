package djzip

import "errors"

// Sentinel errors for package djzip.
// These can be checked with errors.Is() for specific error handling.
var (
	// ErrInvalidState is returned when an operation finds the writer
	// closed, mid-operation, or poisoned by an earlier write failure.
	ErrInvalidState = errors.New("archive writer is not ready for another operation")

	// ErrSizeLimit is returned when a name length, entry size, or byte
	// offset cannot fit the zip format's fixed-width header fields.
	ErrSizeLimit = errors.New("value does not fit the zip format's fixed-width fields")
)
