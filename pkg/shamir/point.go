package shamir

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
	"github.com/vaultkeep/mersenne-sss/pkg/validation"
)

// Point is a single (x, y) share of a Shamir polynomial: x identifies the
// participant (1..n, n < 2^31) and y = P(x) mod p. Points are immutable
// once constructed (spec §3).
type Point struct {
	X *bigint.Int
	Y *bigint.Int
}

// NewPoint constructs a Point from x and y.
func NewPoint(x, y *bigint.Int) Point {
	return Point{X: x, Y: y}
}

// Equal reports componentwise equality.
func (p Point) Equal(o Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// magnitude returns floor(sqrt(x^2 + y^2)), the Euclidean ordering key used
// by Less. Nothing in this package sorts points by it; interpolation checks
// x-coordinates for duplicates directly (spec §9 design notes note that a
// lexicographic (x, y) order would be equally valid).
func (p Point) magnitude() *bigint.Int {
	return p.X.Mul(p.X).Add(p.Y.Mul(p.Y)).Sqrt()
}

// Less orders points by ascending Euclidean magnitude of (x, y), falling
// back to comparing x then y when magnitudes tie.
func (p Point) Less(o Point) bool {
	pm, om := p.magnitude(), o.magnitude()
	if !pm.Equal(om) {
		return pm.LessThan(om)
	}
	if !p.X.Equal(o.X) {
		return p.X.LessThan(o.X)
	}
	return p.Y.LessThan(o.Y)
}

// Hash returns hash(x) xor hash(y), a simple FNV-1a based hash over the
// big-endian encoding of each coordinate (spec §3: "Hash = hash(x) ⊕ hash(y)").
func (p Point) Hash() uint64 {
	return fnv1a(p.X.BigEndianBytes()) ^ fnv1a(p.Y.BigEndianBytes())
}

func fnv1a(b []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// hexUpper returns the upper-case, two-characters-per-byte hex encoding of
// a big-endian magnitude, per spec §4.9.
func hexUpper(x *bigint.Int) string {
	return strings.ToUpper(hex.EncodeToString(x.BigEndianBytes()))
}

// Encode renders the point as the wire share string HEX(x)-HEX(y), both
// upper-case and big-endian (spec §4.9).
func (p Point) Encode() string {
	return fmt.Sprintf("%s-%s", hexUpper(p.X), hexUpper(p.Y))
}

// ParsePoint parses a single "HEX(x)-HEX(y)" share string. Hex characters
// outside 0-9/A-F/a-f are rejected with ErrInvalidInput, rather than
// silently decoding to zero (spec §9 open question: this implementation
// takes the REQUIRED reading and rejects non-hex input).
func ParsePoint(share string) (Point, error) {
	safe := validation.SanitizeForLog(share)

	parts := strings.Split(share, "-")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: share %q must split into exactly two hex halves", ErrInvalidInput, safe)
	}

	xBytes, err := decodeHex(parts[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: share %q has invalid x: %v", ErrInvalidInput, safe, err)
	}

	yBytes, err := decodeHex(parts[1])
	if err != nil {
		return Point{}, fmt.Errorf("%w: share %q has invalid y: %v", ErrInvalidInput, safe, err)
	}

	return NewPoint(bigint.FromBigEndianBytes(xBytes), bigint.FromBigEndianBytes(yBytes)), nil
}

// decodeHex decodes a case-insensitive hex string, rejecting any non-hex
// character rather than treating it as 0.
func decodeHex(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("empty hex half")
	}
	for _, r := range s {
		isHex := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
		if !isHex {
			return nil, fmt.Errorf("non-hex character %q", r)
		}
	}
	return hex.DecodeString(s)
}
