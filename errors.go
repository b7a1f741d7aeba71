package rc

import "errors"

// Common errors
var (
	// ErrOutOfMemory indicates a control block could not be allocated
	// because the block budget set with SetBlockLimit is exhausted.
	ErrOutOfMemory = errors.New("rc: out of memory")

	errStrongUnderflow = errors.New("rc: strong count underflow")
	errWeakUnderflow   = errors.New("rc: weak count underflow")
)
