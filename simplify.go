package padic

// Simplify returns the canonical form of x: no zero digits in the
// fractional places before the first significant digit, the repeating
// part merged as far right as possible into the non-repeating prefix,
// and the period reduced to its true minimum. Simplifying an already
// canonical expansion returns an identical value.
func (x Expansion) Simplify() Expansion {
	digits := append([]int64(nil), x.digits...)
	repeat, shift := x.repeat, x.shift

	// Drop zero digits from the lowest fractional places. When the zero
	// sits inside the repeating block (repeat == 0) the block is rotated
	// left instead of shortened, which keeps the repeat index in range.
	for shift > 0 && digits[0] == 0 {
		if repeat > 0 {
			digits = digits[1:]
			repeat--
		} else {
			copy(digits, digits[1:])
			digits[len(digits)-1] = 0
		}
		shift--
	}

	// Shrink the repeating block from the right: a block that starts one
	// position earlier with the same final digit repeats identically.
	for repeat > 0 && digits[repeat-1] == digits[len(digits)-1] {
		repeat--
		digits = digits[:len(digits)-1]
	}

	// Reduce to the smallest period. Candidates are checked in ascending
	// order, so the first divisor of the period that reproduces the whole
	// repeating block is minimal.
	period := len(digits) - repeat
	for i := 1; i <= period/2; i++ {
		if period%i != 0 {
			continue
		}
		ok := true
		for j := repeat + i; j < len(digits); j++ {
			if digits[j] != digits[j-i] {
				ok = false
				break
			}
		}
		if ok {
			digits = digits[:repeat+i]
			break
		}
	}
	return Expansion{p: x.p, digits: digits, repeat: repeat, shift: shift}
}
