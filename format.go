package padic

import "strings"

// digitAlphabet holds the symbols used to render digits, so bases up to
// 36 are representable.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// String renders x with its digits in reading order, highest place
// first: the repeating block in parentheses, then the non-repeating
// digits, then a '.' followed by the fractional places when the shift
// is nonzero. Fractional places inside the repeating block are rendered
// from the block, so a simplified value like 1/16 in base 2 (digits
// [1 0], repeat 1, shift 4) prints as "(0).0001".
//
// If any digit has no symbol in the alphabet, String returns the
// sentinel "{not enough symbols to represent this number}".
func (x Expansion) String() string {
	period := x.Period()
	if period < 1 {
		return "{malformed expansion}"
	}
	for _, d := range x.digits {
		if d >= int64(len(digitAlphabet)) {
			return "{not enough symbols to represent this number}"
		}
	}
	rpt, shr := x.repeat, x.shift
	cyclic := func(i int) byte {
		return digitAlphabet[x.digits[rpt+(i-rpt)%period]]
	}
	var b strings.Builder
	// One full period of the repeating block, ending just left of both
	// the non-repeating digits and the radix point.
	b.WriteByte('(')
	for i := max(shr-rpt, 0) + len(x.digits) - 1; i >= max(shr, rpt); i-- {
		b.WriteByte(cyclic(i))
	}
	b.WriteByte(')')
	// Non-repeating digits left of the radix point.
	for i := max(shr, rpt) - 1; i >= shr; i-- {
		b.WriteByte(digitAlphabet[x.digits[i]])
	}
	if shr > 0 {
		// Fractional places may extend past the stored prefix into the
		// repeating block when the expansion is simplified.
		b.WriteByte('.')
		for i := shr - 1; i >= min(shr, rpt); i-- {
			b.WriteByte(cyclic(i))
		}
		for i := min(shr, rpt) - 1; i >= 0; i-- {
			b.WriteByte(digitAlphabet[x.digits[i]])
		}
	}
	return b.String()
}
