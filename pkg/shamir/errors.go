package shamir

import "errors"

// Sentinel errors for the polynomial/share/splitter/combiner core (spec §7).
var (
	// ErrInvalidArgument covers null/absent required inputs.
	ErrInvalidArgument = errors.New("shamir: invalid argument")

	// ErrOutOfRange covers threshold and share-count violations.
	ErrOutOfRange = errors.New("shamir: value out of range")

	// ErrIllegalState covers an operation attempted before the level/prime
	// is initialized.
	ErrIllegalState = errors.New("shamir: illegal state")

	// ErrInvalidInput covers shares that fail to parse or reconstruction
	// preconditions that are violated.
	ErrInvalidInput = errors.New("shamir: invalid input")
)
