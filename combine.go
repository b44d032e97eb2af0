package padic

// DigitOp is a pure function combining two digits in [0, p) into a
// digit in [0, p).
type DigitOp func(a, b int64) int64

// SumDigits returns the DigitOp that adds two base-p digits modulo p.
// For p = 2 the digit-wise sum of two expansions is their XOR.
func SumDigits(p int64) DigitOp {
	return func(a, b int64) int64 {
		return (a + b) % p
	}
}

// TryCombine applies op to x and y digit by digit at each logical place
// value and returns the resulting expansion.
// TryCombine returns an error if x and y have different bases.
//
// The two operands may have different shifts and different periods. Each
// behaves as a cyclic automaton over its own digit positions; both are
// stepped simultaneously, and the joint position pair is tracked until
// it recurs, which bounds the loop by roughly the product of the two
// periods plus the stored digit counts. The result is generally not in
// canonical form; use Simplify on it.
func (x Expansion) TryCombine(y Expansion, op DigitOp) (Expansion, error) {
	if x.p != y.p {
		return Expansion{}, ErrBaseMismatch
	}

	// Logical position 0 is the lowest place of the more-shifted operand.
	// A negative index means that operand has no stored digit this far
	// right, so it contributes 0.
	ix := min(0, x.shift-y.shift)
	iy := min(0, y.shift-x.shift)

	type state struct{ ix, iy int }
	seen := make(map[state]int)
	var digits []int64
	repeat := 0
	for {
		s := state{ix, iy}
		if at, ok := seen[s]; ok {
			repeat = at
			break
		}
		seen[s] = len(digits)
		var dx, dy int64
		if ix >= 0 {
			dx = x.digits[ix]
		}
		if iy >= 0 {
			dy = y.digits[iy]
		}
		digits = append(digits, op(dx, dy))
		ix++
		iy++
		if ix == len(x.digits) {
			ix = x.repeat
		}
		if iy == len(y.digits) {
			iy = y.repeat
		}
	}
	return Expansion{p: x.p, digits: digits, repeat: repeat, shift: max(x.shift, y.shift)}, nil
}

// Combine is like TryCombine but panics if the bases differ.
func (x Expansion) Combine(y Expansion, op DigitOp) Expansion {
	z, err := x.TryCombine(y, op)
	if err != nil {
		panic(err)
	}
	return z
}
