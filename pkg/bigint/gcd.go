package bigint

// ExtendedGCD computes (g, s, t) such that s*a + t*b = g, with g >= 0 when
// b > 0. When gcd(a, p) == 1 (always true for 0 < a < p with p prime), s is
// the modular inverse of a mod p. Implements spec §4.6.
func ExtendedGCD(a, b *Int) (g, s, t *Int) {
	oldR, r := a, b
	oldS, s0 := One, Zero
	oldT, t0 := Zero, One

	for !r.IsZero() {
		q := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s0 = s0, oldS.Sub(q.Mul(s0))
		oldT, t0 = t0, oldT.Sub(q.Mul(t0))
	}

	if oldR.Sign() < 0 {
		oldR = oldR.Neg()
		oldS = oldS.Neg()
		oldT = oldT.Neg()
	}

	return oldR, oldS, oldT
}
