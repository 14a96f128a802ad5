package secret

import "errors"

// Sentinel errors for secret encoding (spec §4.3, §7).
var (
	// ErrEmpty indicates an empty byte string was supplied where a secret
	// was required.
	ErrEmpty = errors.New("secret: value cannot be empty")

	// ErrNegative indicates a negative integer was supplied as a secret;
	// only non-negative integers are representable.
	ErrNegative = errors.New("secret: value must be non-negative")
)
