// Package bigint provides the arbitrary-precision signed integer abstraction
// consumed by the Mersenne-prime secret sharing core. It wraps the standard
// library's math/big as an external big-integer collaborator: no arithmetic
// is reimplemented here, only the surface the core needs.
package bigint

import (
	"math/big"
)

// Int is an immutable arbitrary-precision signed integer. Every operation
// returns a new Int; the receiver and any argument are left untouched.
type Int struct {
	v *big.Int
}

// Zero, One and Two are the constants the polynomial and field-arithmetic
// code consume most often.
var (
	Zero = FromInt64(0)
	One  = FromInt64(1)
	Two  = FromInt64(2)
)

// FromInt64 builds an Int from a native signed integer.
func FromInt64(n int64) *Int {
	return &Int{v: big.NewInt(n)}
}

// FromLittleEndianBytes interprets b as a little-endian unsigned integer.
// An empty slice decodes to zero.
func FromLittleEndianBytes(b []byte) *Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return &Int{v: new(big.Int).SetBytes(be)}
}

// FromBigEndianBytes interprets b as a big-endian unsigned integer, used for
// the hex share wire format (spec §4.9), which is big-endian.
func FromBigEndianBytes(b []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(b)}
}

// LittleEndianBytes returns the minimal little-endian unsigned encoding of
// the absolute value. Zero encodes as a single zero byte.
func (x *Int) LittleEndianBytes() []byte {
	be := x.v.Bytes()
	if len(be) == 0 {
		return []byte{0}
	}
	le := make([]byte, len(be))
	for i, c := range be {
		le[len(be)-1-i] = c
	}
	return le
}

// BigEndianBytes returns the minimal big-endian unsigned encoding of the
// absolute value. Zero encodes as a single zero byte.
func (x *Int) BigEndianBytes() []byte {
	be := x.v.Bytes()
	if len(be) == 0 {
		return []byte{0}
	}
	return be
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int { return &Int{v: new(big.Int).Add(x.v, y.v)} }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return &Int{v: new(big.Int).Sub(x.v, y.v)} }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int { return &Int{v: new(big.Int).Mul(x.v, y.v)} }

// Div returns the truncated quotient x / y. Panics if y is zero, matching
// spec §4.5's "division by zero is fail-fatal".
func (x *Int) Div(y *Int) *Int {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	return &Int{v: new(big.Int).Quo(x.v, y.v)}
}

// Mod returns the truncated remainder of x / y; the sign follows x, matching
// Go and C truncated-division semantics. Callers that need the mathematical
// (non-negative) modulo must call NormMod. Panics if y is zero.
func (x *Int) Mod(y *Int) *Int {
	if y.IsZero() {
		panic("bigint: modulo by zero")
	}
	return &Int{v: new(big.Int).Rem(x.v, y.v)}
}

// Pow returns x raised to a non-negative exponent e.
func (x *Int) Pow(e *Int) *Int {
	if e.Sign() < 0 {
		panic("bigint: negative exponent")
	}
	return &Int{v: new(big.Int).Exp(x.v, e.v, nil)}
}

// Neg returns -x.
func (x *Int) Neg() *Int { return &Int{v: new(big.Int).Neg(x.v)} }

// Abs returns |x|.
func (x *Int) Abs() *Int { return &Int{v: new(big.Int).Abs(x.v)} }

// Sign returns -1, 0 or 1 depending on whether x is negative, zero or positive.
func (x *Int) Sign() int { return x.v.Sign() }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.v.Sign() == 0 }

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool { return x.v.Cmp(y.v) == 0 }

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to, or
// greater than y.
func (x *Int) Cmp(y *Int) int { return x.v.Cmp(y.v) }

// LessThan reports whether x < y.
func (x *Int) LessThan(y *Int) bool { return x.v.Cmp(y.v) < 0 }

// BitLen returns the length of the absolute value in bits; zero for zero.
func (x *Int) BitLen() int { return x.v.BitLen() }

// ByteLen returns ceil(BitLen()/8), the number of bytes needed to hold the
// unsigned magnitude.
func (x *Int) ByteLen() int { return (x.BitLen() + 7) / 8 }

// Sqrt returns the integer square root of |x|, with the original sign of x
// reapplied. It is used only for the Euclidean Point ordering (spec §3) and
// is not meaningful as a field operation.
func (x *Int) Sqrt() *Int {
	abs := new(big.Int).Abs(x.v)
	r := new(big.Int).Sqrt(abs)
	if x.Sign() < 0 {
		r.Neg(r)
	}
	return &Int{v: r}
}

// String returns the base-10 string representation, for debugging and logs.
func (x *Int) String() string { return x.v.String() }

// NormMod computes the mathematical modulo ((a mod p) + p) mod p, which is
// always non-negative for p > 0. This is the normalization every field
// operation in the core relies on, since Mod alone may return a negative
// remainder for a negative dividend.
func NormMod(a, p *Int) *Int {
	r := a.Mod(p)
	if r.Sign() < 0 {
		r = r.Add(p)
	}
	return r
}
