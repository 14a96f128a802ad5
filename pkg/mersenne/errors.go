package mersenne

import "errors"

// Sentinel errors for the security-level table (spec §4.1, §7).
var (
	// ErrOutOfRange indicates a requested exponent is below the table's
	// floor or above its ceiling.
	ErrOutOfRange = errors.New("mersenne: exponent out of range")
)
