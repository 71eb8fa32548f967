package node

import "errors"

// Error kinds returned by Invoke. Each is wrapped together with the
// underlying cause, so both can be matched with errors.Is.
var (
	// ErrInvalidInput reports a parameter outside its allowed set or range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRetrieval reports that the source image could not be fetched.
	ErrRetrieval = errors.New("image retrieval failed")

	// ErrConversion reports a failed color-mode conversion.
	ErrConversion = errors.New("color conversion failed")

	// ErrPersistence reports that the host failed to store the result.
	ErrPersistence = errors.New("image persistence failed")
)
