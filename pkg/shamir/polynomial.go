package shamir

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
)

// polynomial is the list of coefficients coefs[0..k-1] of a degree-(k-1)
// polynomial over GF(p), constant term first (spec §4.2, §4.4).
type polynomial []*bigint.Int

// newPolynomial builds P with P[0] = secret and P[1..k-1] sampled uniformly
// from [0, p) using randSource, which must yield cryptographically secure
// random bytes (spec §4.2 step 3). randSource defaults to crypto/rand.Reader
// when nil.
func newPolynomial(secret *bigint.Int, k int, p *bigint.Int, randSource io.Reader) (polynomial, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: polynomial degree must allow at least a constant term", ErrOutOfRange)
	}
	if randSource == nil {
		randSource = rand.Reader
	}

	coefs := make(polynomial, k)
	coefs[0] = secret

	nbytes := (p.BitLen() + 7) / 8

	for i := 1; i < k; i++ {
		buf := make([]byte, nbytes)
		if _, err := io.ReadFull(randSource, buf); err != nil {
			panic(fmt.Sprintf("shamir: random source failed: %v", err))
		}
		coefs[i] = bigint.NormMod(bigint.FromLittleEndianBytes(buf).Abs(), p)
	}

	return coefs, nil
}

// evaluate computes P(x) mod p using Horner's rule, driven from the
// highest-degree coefficient down (spec §4.4).
func (p polynomial) evaluate(x, prime *bigint.Int) *bigint.Int {
	a := bigint.Zero
	for i := len(p) - 1; i >= 0; i-- {
		a = bigint.NormMod(a.Mul(x).Add(p[i]), prime)
	}
	return a
}
