package shamir

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
	"github.com/vaultkeep/mersenne-sss/pkg/logging"
	"github.com/vaultkeep/mersenne-sss/pkg/mersenne"
	"github.com/vaultkeep/mersenne-sss/pkg/metrics"
	"github.com/vaultkeep/mersenne-sss/pkg/secret"
)

// Splitter composes the polynomial, security-level and share machinery to
// produce a ShareSet from a secret (spec §4.2). It caches a mutable current
// security level and prime, updated on every call; a Splitter is therefore
// NOT safe for concurrent use, though distinct Splitters operating on
// disjoint data may run in parallel (spec §5).
type Splitter struct {
	level  int
	prime  *bigint.Int
	rand   io.Reader
	logger *logging.Logger
}

// SplitterOption configures a Splitter at construction time.
type SplitterOption func(*Splitter)

// WithRandomSource overrides the random byte source used to sample
// polynomial coefficients. It defaults to crypto/rand.Reader; tests may
// substitute a deterministic reader.
func WithRandomSource(r io.Reader) SplitterOption {
	return func(s *Splitter) { s.rand = r }
}

// WithLogger attaches a logger; nil is safe and disables logging.
func WithLogger(l *logging.Logger) SplitterOption {
	return func(s *Splitter) { s.logger = l }
}

// WithInitialLevel sets the Splitter's starting security level, snapped per
// spec §4.1. It panics on an invalid level since it only runs at
// construction time with a caller-controlled constant in the common case;
// use SetSecurityLevel for a checked runtime change.
func WithInitialLevel(level int) SplitterOption {
	return func(s *Splitter) {
		snapped, err := mersenne.Snap(level)
		if err != nil {
			panic(err)
		}
		s.level = snapped
		s.prime = mersenne.Prime(snapped)
	}
}

// NewSplitter creates a Splitter at the default security level (13, or 7
// under legacy mode).
func NewSplitter(opts ...SplitterOption) *Splitter {
	level := mersenne.DefaultLevel()
	s := &Splitter{
		level: level,
		prime: mersenne.Prime(level),
		rand:  rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SecurityLevel returns the Splitter's current Mersenne exponent.
func (s *Splitter) SecurityLevel() int { return s.level }

// SetSecurityLevel validates and snaps level per spec §4.1, then updates the
// cached prime.
func (s *Splitter) SetSecurityLevel(level int) error {
	snapped, err := mersenne.Snap(level)
	if err != nil {
		return err
	}
	s.level = snapped
	s.prime = mersenne.Prime(snapped)
	return nil
}

// ShareOption configures a single MakeShares call.
type ShareOption func(*shareRequest)

type shareRequest struct {
	secret *secret.Secret
	level  *int
}

// WithSecret supplies the secret to split, instead of sampling a random one.
func WithSecret(s *secret.Secret) ShareOption {
	return func(r *shareRequest) { r.secret = s }
}

// WithLevel sets the Splitter's level for this call, snapped per spec §4.1.
// The level is stored on the Splitter, so a subsequent call without
// WithLevel reuses it (spec §3: "a mutable current SecurityLevel... updated
// on each operation").
func WithLevel(level int) ShareOption {
	return func(r *shareRequest) { r.level = &level }
}

// MakeShares splits a secret into n shares, any k of which reconstruct it.
// With no WithSecret option a uniformly random secret is sampled at the
// resolved level. An explicit WithLevel sets the level first; a supplied
// secret is then always auto-raised to at least 8*secret.ByteLen(), snapped
// per spec §4.1 — autoRaiseFor never lowers the level WithLevel just set, so
// this only widens an explicit level that turns out too small for the
// secret's byte length (spec §4.2).
func (s *Splitter) MakeShares(k, n int, opts ...ShareOption) (*ShareSet, error) {
	if k < 2 {
		return nil, s.recordSplitError(fmt.Errorf("%w: threshold k must be at least 2, got %d", ErrOutOfRange, k))
	}
	if n < k {
		return nil, s.recordSplitError(fmt.Errorf("%w: total shares n (%d) must be >= threshold k (%d)", ErrOutOfRange, n, k))
	}
	if n < 1 || n >= (1<<31) {
		return nil, s.recordSplitError(fmt.Errorf("%w: total shares n (%d) must satisfy 1 <= n < 2^31", ErrOutOfRange, n))
	}

	req := &shareRequest{}
	for _, opt := range opts {
		opt(req)
	}

	if req.level != nil {
		if err := s.SetSecurityLevel(*req.level); err != nil {
			return nil, s.recordSplitError(err)
		}
	}
	if req.secret != nil {
		if err := s.autoRaiseFor(req.secret); err != nil {
			return nil, s.recordSplitError(err)
		}
	}

	sec := req.secret
	if sec == nil {
		randomValue, err := s.sampleFieldElement()
		if err != nil {
			return nil, s.recordSplitError(err)
		}
		sec = secret.FromFieldElement(randomValue)
	}

	if err := sec.ValidateFitsUnder(s.prime); err != nil {
		return nil, s.recordSplitError(err)
	}

	if s.logger != nil {
		s.logger.Debugf("splitting secret of %d bytes at level %d (k=%d, n=%d)", sec.ByteLen(), s.level, k, n)
	}

	poly, err := newPolynomial(sec.Value(), k, s.prime, s.rand)
	if err != nil {
		return nil, s.recordSplitError(err)
	}

	points := make([]Point, n)
	for i := 1; i <= n; i++ {
		x := bigint.FromInt64(int64(i))
		y := poly.evaluate(x, s.prime)
		points[i-1] = NewPoint(x, y)
	}

	metrics.RecordSplit(s.level, k, n)

	return newShareSet(points, sec), nil
}

// recordSplitError records a failed MakeShares call and returns err
// unchanged, so call sites can return through it.
func (s *Splitter) recordSplitError(err error) error {
	metrics.RecordError(metrics.OpSplit)
	return err
}

// autoRaiseFor raises the Splitter's level to at least 8*secret.ByteLen(),
// snapped, per spec §4.2. It never lowers the current level.
func (s *Splitter) autoRaiseFor(sec *secret.Secret) error {
	required := 8 * sec.ByteLen()
	if required <= s.level {
		return nil
	}
	snapped, err := mersenne.Snap(required)
	if err != nil {
		return err
	}
	if snapped > s.level {
		s.level = snapped
		s.prime = mersenne.Prime(snapped)
	}
	return nil
}

// sampleFieldElement draws a uniform value in [0, p) from the Splitter's
// random source.
func (s *Splitter) sampleFieldElement() (*bigint.Int, error) {
	nbytes := (s.prime.BitLen() + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(s.rand, buf); err != nil {
		panic(fmt.Sprintf("shamir: random source failed: %v", err))
	}
	return bigint.NormMod(bigint.FromLittleEndianBytes(buf).Abs(), s.prime), nil
}
