package mersenne

import "github.com/vaultkeep/mersenne-sss/pkg/bigint"

// InferLevel re-infers the security level (and its prime) from the largest
// y-value observed across a set of shares, implementing spec §4.8. It starts
// at Snap(8*maxY.ByteLen()), descends the table while maxY still fits under
// the current prime, then steps back up once. For maxY >= 127 the result is
// the smallest table exponent e with maxY < 2^e - 1 (13 for maxY = 8190).
// When the descent reaches the bottom of the table no step back up is made,
// so every maxY below 127 yields 5.
func InferLevel(maxY *bigint.Int) (level int, p *bigint.Int, err error) {
	level, err = Snap(8 * maxY.ByteLen())
	if err != nil {
		return 0, nil, err
	}

	i := IndexOf(level)
	p = Prime(level)

	for bigint.NormMod(maxY, p).Equal(maxY) && i > 0 && level > Min() {
		i--
		level = exponents[i]
		p = Prime(level)
	}

	if level > Min() {
		i++
		level = exponents[i]
		p = Prime(level)
	}

	return level, p, nil
}
