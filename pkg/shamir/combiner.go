package shamir

import (
	"fmt"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
	"github.com/vaultkeep/mersenne-sss/pkg/logging"
	"github.com/vaultkeep/mersenne-sss/pkg/mersenne"
	"github.com/vaultkeep/mersenne-sss/pkg/metrics"
	"github.com/vaultkeep/mersenne-sss/pkg/secret"
)

// Combiner reconstructs a secret from a set of shares via Lagrange
// interpolation (spec §4.7). Like Splitter, it caches a mutable current
// security level and prime, updated on every call, and is therefore NOT
// safe for concurrent use (spec §5).
type Combiner struct {
	level  int
	prime  *bigint.Int
	logger *logging.Logger
}

// CombinerOption configures a Combiner at construction time.
type CombinerOption func(*Combiner)

// WithCombinerLogger attaches a logger; nil is safe and disables logging.
func WithCombinerLogger(l *logging.Logger) CombinerOption {
	return func(c *Combiner) { c.logger = l }
}

// NewCombiner creates a Combiner. Its level/prime are undefined until the
// first Reconstruct call infers them from the supplied shares (spec §4.8);
// SecurityLevel returns 0 before that point.
func NewCombiner(opts ...CombinerOption) *Combiner {
	c := &Combiner{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SecurityLevel returns the level inferred by the most recent Reconstruct
// call, or 0 if none has run yet.
func (c *Combiner) SecurityLevel() int { return c.level }

// Reconstruct recovers the original secret from shares supplied as a
// *ShareSet, a []string of "HEX(x)-HEX(y)" shares, or a newline-separated
// string of the same (spec §6).
func (c *Combiner) Reconstruct(shares any) (*secret.Secret, error) {
	points, err := pointsFrom(shares)
	if err != nil {
		return nil, c.recordCombineError(err)
	}
	return c.reconstructPoints(points)
}

// recordCombineError records a failed Reconstruct call and returns err
// unchanged, so call sites can return through it.
func (c *Combiner) recordCombineError(err error) error {
	metrics.RecordError(metrics.OpCombine)
	return err
}

// pointsFrom normalizes the three accepted input shapes into a Point slice.
func pointsFrom(shares any) ([]Point, error) {
	switch v := shares.(type) {
	case *ShareSet:
		if v == nil {
			return nil, fmt.Errorf("%w: shares cannot be nil", ErrInvalidArgument)
		}
		return v.Points, nil
	case ShareSet:
		return v.Points, nil
	case []Point:
		return v, nil
	case []string:
		ss, err := ParseShareStrings(v)
		if err != nil {
			return nil, err
		}
		return ss.Points, nil
	case string:
		ss, err := ParseShareSet(v)
		if err != nil {
			return nil, err
		}
		return ss.Points, nil
	default:
		return nil, fmt.Errorf("%w: unsupported share input type %T", ErrInvalidArgument, shares)
	}
}

func (c *Combiner) reconstructPoints(points []Point) (*secret.Secret, error) {
	if len(points) < 2 {
		return nil, c.recordCombineError(fmt.Errorf("%w: reconstruction requires at least 2 shares, got %d", ErrOutOfRange, len(points)))
	}

	if err := requireDistinctX(points); err != nil {
		return nil, c.recordCombineError(err)
	}

	maxY := points[0].Y
	for _, p := range points[1:] {
		if p.Y.Cmp(maxY) > 0 {
			maxY = p.Y
		}
	}

	level, p, err := mersenne.InferLevel(maxY)
	if err != nil {
		return nil, c.recordCombineError(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	c.level, c.prime = level, p

	if c.logger != nil {
		c.logger.Debugf("reconstructing from %d shares at inferred level %d", len(points), level)
	}

	value := lagrangeInterpolateAtZero(points, p)
	metrics.RecordCombine(level, len(points))

	return secret.FromFieldElement(value), nil
}

func requireDistinctX(points []Point) error {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		key := p.X.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate share x-coordinate %s", ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// divMod computes n * s * g mod-free, where (g, s, _) = ExtendedGCD(d, p).
// Since gcd(d, p) == 1 for every 0 < d < p with p prime, multiplying by g is
// algebraically a no-op, but it is preserved exactly as spec §4.7 specifies
// for bit-for-bit agreement with the reference arithmetic.
func divMod(n, d, p *bigint.Int) *bigint.Int {
	g, s, _ := bigint.ExtendedGCD(d, p)
	return n.Mul(s).Mul(g)
}

// lagrangeInterpolateAtZero reconstructs f(0) from m distinct points over
// GF(p), following the exact numerator/denominator/DivMod formulation of
// spec §4.7.
func lagrangeInterpolateAtZero(points []Point, p *bigint.Int) *bigint.Int {
	m := len(points)
	numProd := make([]*bigint.Int, m)
	denProd := make([]*bigint.Int, m)

	for i := 0; i < m; i++ {
		num := bigint.One
		den := bigint.One
		for j := 0; j < m; j++ {
			if j == i {
				continue
			}
			num = num.Mul(bigint.Zero.Sub(points[j].X))
			den = den.Mul(points[i].X.Sub(points[j].X))
		}
		numProd[i] = num
		denProd[i] = den
	}

	d := bigint.One
	for _, dp := range denProd {
		d = d.Mul(dp)
	}

	n := bigint.Zero
	for i := 0; i < m; i++ {
		yPrime := bigint.NormMod(points[i].Y, p)
		term := divMod(numProd[i].Mul(d).Mul(yPrime), denProd[i], p)
		n = n.Add(term)
	}

	a := divMod(n, d, p).Add(p)
	return bigint.NormMod(a, p)
}
