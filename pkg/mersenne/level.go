// Package mersenne implements the security-level (Mersenne-exponent)
// selection policy used by the secret sharing core: the table of permitted
// exponents, the legacy-mode floor, and the snap-up/inference rules of
// spec §4.1 and §4.8.
package mersenne

import (
	"fmt"
	"sync/atomic"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
)

// exponents is the table E of known Mersenne-prime exponents, in ascending
// order, up to 43,112,609. It is unexported so callers cannot mutate it;
// Table returns a defensive copy.
var exponents = [...]int{
	5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607, 1279, 2203, 2281, 3217,
	4253, 4423, 9689, 9941, 11213, 19937, 21701, 23209, 44497, 86243, 110503,
	132049, 216091, 756839, 859433, 1257787, 1398269, 2976221, 3021377,
	6972593, 13466917, 20996011, 24036583, 25964951, 30402457, 32582657,
	37156667, 42643801, 43112609,
}

// legacyMode is the process-wide LEGACY_MODE switch from spec §4.1/§5. It is
// read-mostly by design: set once at startup, read on every level selection.
var legacyMode atomic.Bool

// SetLegacyMode sets the process-wide LEGACY_MODE flag. Concurrent mutation
// of this flag while splits/combines are in flight yields unspecified level
// selection, per spec §5; callers SHOULD set it once before use.
func SetLegacyMode(on bool) {
	legacyMode.Store(on)
}

// LegacyMode reports the current value of the process-wide LEGACY_MODE flag.
func LegacyMode() bool {
	return legacyMode.Load()
}

// Table returns a defensive copy of the permitted exponent table, ascending.
func Table() []int {
	out := make([]int, len(exponents))
	copy(out, exponents[:])
	return out
}

// Min returns the smallest exponent in the table (the absolute floor,
// reachable only in legacy mode).
func Min() int { return exponents[0] }

// Max returns the largest exponent in the table.
func Max() int { return exponents[len(exponents)-1] }

// legacyFloor is the effective floor below which a requested level is
// raised, per spec §4.1 step 2 (13 normally, or Min() under legacy mode).
func legacyFloor(legacy bool) int {
	if legacy {
		return Min()
	}
	return 13
}

// DefaultLevel returns the default construction-time level: 13, or 7 under
// legacy mode (spec §4.1).
func DefaultLevel() int {
	if LegacyMode() {
		return 7
	}
	return 13
}

// Snap validates and snaps a requested exponent v against the process-wide
// LEGACY_MODE flag, following spec §4.1 steps 1-3:
//  1. v < 5 fails with ErrOutOfRange.
//  2. Below the legacy floor (13, or 5 under legacy mode) the value is
//     raised to that floor.
//  3. The result is snapped up to the next member of the table; exceeding
//     Max() fails with ErrOutOfRange.
func Snap(v int) (int, error) {
	return SnapWithLegacy(v, LegacyMode())
}

// SnapWithLegacy is the pure function form of Snap, taking the legacy flag
// explicitly instead of reading the process-wide switch. It exists so the
// snap policy can be tested and reasoned about independently of global
// state (see design notes on modeling the table as a value).
func SnapWithLegacy(v int, legacy bool) (int, error) {
	if v < Min() {
		return 0, fmt.Errorf("%w: level %d is below the minimum exponent %d", ErrOutOfRange, v, Min())
	}

	if floor := legacyFloor(legacy); v < floor {
		v = floor
	}

	for _, e := range exponents {
		if e >= v {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: level %d exceeds the maximum exponent %d", ErrOutOfRange, v, Max())
}

// IndexOf returns the index of exponent e within the table, or -1 if e is
// not a table member.
func IndexOf(e int) int {
	for i, v := range exponents {
		if v == e {
			return i
		}
	}
	return -1
}

// Prime returns the Mersenne prime 2^e - 1 for a table exponent e. Its byte
// length (bigint.Int.ByteLen) bounds share coefficient widths.
func Prime(e int) *bigint.Int {
	return bigint.Two.Pow(bigint.FromInt64(int64(e))).Sub(bigint.One)
}
