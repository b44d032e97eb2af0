// Package padic converts between exact rational numbers and their p-adic
// digit expansions for a prime base p.
// See the Expansion type and the FromRat function for details.
package padic

import (
	"errors"
	"math/big"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero       = errors.New("denominator is zero")
	ErrBaseNotPrime  = errors.New("base is not prime")
	ErrNoPeriod      = errors.New("expansion has no repeating digits")
	ErrRepeatRange   = errors.New("repeat index out of range")
	ErrDigitRange    = errors.New("digit out of range for base")
	ErrShiftRange    = errors.New("shift is negative")
	ErrBaseMismatch  = errors.New("expansions have different bases")
	ErrNotInvertible = errors.New("no modular inverse exists")
)

// Expansion is an eventually-periodic p-adic digit expansion.
//
// The stored digits run from the lowest place upward: digits[0] holds the
// coefficient of p^-shift, digits[1] the next higher place, and so on.
// After the last stored digit the sequence repeats forever from the repeat
// index, so the period is len(digits)-repeat, which is always at least 1.
// The shift counts how many stored digits lie to the right of the radix
// point.
//
// Valid values are obtained in the following ways:
//   - returned by the NewExpansion, FromRat, or Zero functions
//   - returned by Simplify or Combine on any valid values
//   - copied from a valid value
//
// Expansion has value semantics: operations never mutate the digits of
// their operands, and returned values share no storage with their inputs.
type Expansion struct {
	p      int64
	digits []int64
	repeat int
	shift  int
}

// NewExpansion creates an expansion in base p from an explicit digit
// sequence, repeat index, and shift. The digits are copied.
// It returns an error unless p is prime, every digit is in [0, p), the
// shift is non-negative, and 0 <= repeat < len(digits) so that the
// repeating part has at least one digit.
func NewExpansion(p int64, digits []int64, repeat, shift int) (Expansion, error) {
	if !isPrime(p) {
		return Expansion{}, ErrBaseNotPrime
	}
	if len(digits) == 0 || repeat == len(digits) {
		return Expansion{}, ErrNoPeriod
	}
	if repeat < 0 || repeat > len(digits) {
		return Expansion{}, ErrRepeatRange
	}
	if shift < 0 {
		return Expansion{}, ErrShiftRange
	}
	for _, d := range digits {
		if d < 0 || d >= p {
			return Expansion{}, ErrDigitRange
		}
	}
	return Expansion{p: p, digits: append([]int64(nil), digits...), repeat: repeat, shift: shift}, nil
}

// Zero returns the canonical zero expansion in base p: a single zero
// digit repeating from index 0 with no shift.
// Zero panics if p is not prime.
func Zero(p int64) Expansion {
	if !isPrime(p) {
		panic(ErrBaseNotPrime)
	}
	return Expansion{p: p, digits: []int64{0}, repeat: 0, shift: 0}
}

// FromRat converts a rational number to its p-adic expansion.
// FromRat returns an error if p is not prime.
//
// The returned expansion is not always in canonical form; use Simplify
// to obtain one with a minimal period and no redundant leading zeroes.
func FromRat(x *big.Rat, p int64) (Expansion, error) {
	if !isPrime(p) {
		return Expansion{}, ErrBaseNotPrime
	}
	pb := big.NewInt(p)
	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())

	// Make gcd(den, p) = 1 so that den is invertible mod p. Each removed
	// denominator p-factor divides the value by p: cancel it against a
	// numerator p-factor when one exists (avoiding a spurious trailing
	// zero digit), otherwise shift the whole expansion right one place.
	shift := 0
	var q, r big.Int
	for {
		q.QuoRem(den, pb, &r)
		if r.Sign() != 0 {
			break
		}
		den.Set(&q)
		q.QuoRem(num, pb, &r)
		if r.Sign() == 0 {
			num.Set(&q)
		} else {
			shift++
		}
	}
	dinv, err := ModInverse(new(big.Int).Mod(den, pb).Int64(), p)
	if err != nil {
		// den is coprime to p after stripping and p is prime
		panic(err)
	}

	// Solve num - expansion*den = 0 one power of p at a time. The residual
	// state is (num - expansion-so-far * den) / p^k; appending the digit
	// residual*den^-1 mod p makes the congruence hold mod p^(k+1). The
	// residuals are drawn from a finite set, so some state recurs, and
	// from that point on the digits repeat.
	var digits []int64
	repeat := 0
	seen := make(map[string]int)
	res := num
	var t big.Int
	for {
		key := res.String()
		if at, ok := seen[key]; ok {
			repeat = at
			break
		}
		seen[key] = len(digits)
		d := mulMod(new(big.Int).Mod(res, pb).Int64(), dinv, p)
		digits = append(digits, d)
		t.SetInt64(d)
		t.Mul(&t, den)
		res.Sub(res, &t)
		res.Quo(res, pb) // exact by choice of d
	}
	return Expansion{p: p, digits: digits, repeat: repeat, shift: shift}, nil
}

// Rat converts x back to a rational number, in lowest terms with a
// positive denominator. Rat panics with ErrNoPeriod if x is malformed,
// which cannot happen for values built by this package.
func (x Expansion) Rat() *big.Rat {
	t := x.Period()
	if t < 1 {
		panic(ErrNoPeriod)
	}
	pb := big.NewInt(x.p)
	a := new(big.Int)
	c := new(big.Int)
	k := big.NewInt(1)
	var term big.Int
	for i, d := range x.digits {
		term.SetInt64(d)
		term.Mul(&term, k)
		if i < x.repeat {
			a.Add(a, &term)
		} else {
			c.Add(c, &term)
		}
		k.Mul(k, pb)
	}
	// The repeating block is a geometric series: its value is c/(1-p^t).
	// With the prefix a and the shift applied, the whole expansion is
	// (a + c/(1-p^t)) / p^shift, which rearranges to exact integers as
	// (a*(p^t-1) - c) / ((p^t-1) * p^shift).
	pv := new(big.Int).Exp(pb, big.NewInt(int64(t)), nil)
	pv.Sub(pv, big.NewInt(1))
	num := new(big.Int).Mul(a, pv)
	num.Sub(num, c)
	den := new(big.Int).Exp(pb, big.NewInt(int64(x.shift)), nil)
	den.Mul(den, pv)
	return new(big.Rat).SetFrac(num, den)
}

// Base returns the prime base of x.
func (x Expansion) Base() int64 {
	return x.p
}

// Digits returns a copy of the stored digits of x, lowest place first.
func (x Expansion) Digits() []int64 {
	return append([]int64(nil), x.digits...)
}

// RepeatIndex returns the index the digit sequence cycles back to after
// its last stored digit.
func (x Expansion) RepeatIndex() int {
	return x.repeat
}

// Shift returns the number of stored digits to the right of the radix
// point.
func (x Expansion) Shift() int {
	return x.shift
}

// Period returns the length of the repeating part of x.
func (x Expansion) Period() int {
	return len(x.digits) - x.repeat
}

// IsZero returns true if x is equal to 0.
func (x Expansion) IsZero() bool {
	for _, d := range x.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// IsValid returns true if x is a well-formed expansion.
// Invalid values do not arise under normal circumstances, but the zero
// value of the type Expansion is not valid.
func (x Expansion) IsValid() bool {
	if !isPrime(x.p) || x.shift < 0 {
		return false
	}
	if x.repeat < 0 || x.repeat >= len(x.digits) {
		return false
	}
	for _, d := range x.digits {
		if d < 0 || d >= x.p {
			return false
		}
	}
	return true
}

// Equal reports whether x and y are structurally identical: same base,
// digits, repeat index, and shift. Distinct representations of the same
// number compare unequal; simplify both sides first, or compare with
// Rat, for semantic equality.
func (x Expansion) Equal(y Expansion) bool {
	if x.p != y.p || x.repeat != y.repeat || x.shift != y.shift || len(x.digits) != len(y.digits) {
		return false
	}
	for i, d := range x.digits {
		if d != y.digits[i] {
			return false
		}
	}
	return true
}

// isPrime reports whether p is (almost certainly) prime.
// ProbablyPrime is exact for all bases that fit in 64 bits.
func isPrime(p int64) bool {
	return p >= 2 && big.NewInt(p).ProbablyPrime(20)
}
