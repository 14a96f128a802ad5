// Package secret implements the encode/decode contract between a byte
// string or non-negative integer and a field element, tracking the byte
// length of the original value so the round trip is exact (spec §4.3).
package secret

import (
	"fmt"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
)

// Secret is a field element plus the byte length of its canonical
// representation. It is immutable once constructed.
type Secret struct {
	value   *bigint.Int
	byteLen int
}

// FromBytes encodes a byte string as a field element: s is interpreted as a
// little-endian unsigned integer, and len(s) is retained as the canonical
// byte length so trailing zero bytes are not silently dropped on decode.
func FromBytes(s []byte) (*Secret, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return &Secret{value: bigint.FromLittleEndianBytes(s), byteLen: len(s)}, nil
}

// FromString encodes a UTF-8 string the same way FromBytes does; the
// recorded byte length equals the UTF-8 encoding length.
func FromString(s string) (*Secret, error) {
	return FromBytes([]byte(s))
}

// FromNonNegativeInt encodes a non-negative integer, emitting the minimal
// little-endian byte representation (a single zero byte for value 0).
func FromNonNegativeInt(v *bigint.Int) (*Secret, error) {
	if v.Sign() < 0 {
		return nil, ErrNegative
	}
	return FromFieldElement(v), nil
}

// FromFieldElement wraps a field element already reduced modulo some prime
// (typically the output of Combiner interpolation) as a Secret, recording
// the minimal little-endian byte length. This is the decode path used at
// reconstruction time (spec §4.7's "Return Secret.FromFieldElement(a)"),
// where no external byte-length hint is available.
func FromFieldElement(v *bigint.Int) *Secret {
	n := v.ByteLen()
	if n == 0 {
		n = 1
	}
	return &Secret{value: v, byteLen: n}
}

// Value returns the underlying field element.
func (s *Secret) Value() *bigint.Int { return s.value }

// ByteLen returns the recorded canonical byte length.
func (s *Secret) ByteLen() int { return s.byteLen }

// Bytes decodes the secret back to its canonical little-endian byte
// representation, truncated or zero-padded to the recorded byte length.
func (s *Secret) Bytes() []byte {
	raw := s.value.LittleEndianBytes()

	if len(raw) == s.byteLen {
		return raw
	}

	if len(raw) < s.byteLen {
		out := make([]byte, s.byteLen)
		copy(out, raw)
		return out
	}

	return raw[:s.byteLen]
}

// String decodes the secret and interprets the result as a UTF-8 string.
func (s *Secret) String() string { return string(s.Bytes()) }

// Equal reports whether two secrets encode the same value and byte length.
func (s *Secret) Equal(other *Secret) bool {
	return s.byteLen == other.byteLen && s.value.Equal(other.value)
}

// FitsUnder reports whether the secret's value is a valid field element for
// the given prime (0 <= value < p, spec's Secret invariant).
func (s *Secret) FitsUnder(p *bigint.Int) bool {
	return s.value.Sign() >= 0 && s.value.LessThan(p)
}

// ValidateFitsUnder returns a descriptive error if the secret does not fit
// under p, rather than a bare boolean, for use at Splitter/Combiner
// boundaries where a wrapped error is expected.
func (s *Secret) ValidateFitsUnder(p *bigint.Int) error {
	if !s.FitsUnder(p) {
		return fmt.Errorf("secret: value requires more bits than the security level's prime provides")
	}
	return nil
}
