package padic

import "math/bits"

// GCD returns the greatest common denominator (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
func GCD(m, n int64) int64 {
	_, _, d := ExtGCD(m, n)
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
func ExtGCD(m, n int64) (a, b, d int64) {
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 int64
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - q*a
		t = b0
		b0 = b
		b = t - q*b
	}
}

// ModInverse returns the multiplicative inverse of x modulo m, in [0, m).
// ModInverse returns an error if x and m are not coprime, in which case
// no inverse exists.
func ModInverse(x, m int64) (int64, error) {
	a, _, d := ExtGCD(x%m, m)
	if d != 1 && d != -1 {
		return 0, ErrNotInvertible
	}
	if d == -1 {
		a = -a
	}
	return ((a % m) + m) % m, nil
}

// mulMod returns a*b mod m for a, b in [0, m) without overflowing,
// using 128-bit intermediate arithmetic.
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	return int64(rem)
}
