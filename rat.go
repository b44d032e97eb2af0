package padic

import (
	"fmt"
	"math/big"
	"strings"
)

// NewRat creates a rational number with the given numerator and
// denominator, reduced to lowest terms with a positive denominator.
// NewRat returns an error if the denominator is zero; a negative
// denominator is normalized by negating both parts.
func NewRat(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, ErrDenZero
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// ParseRat parses a string representation of a rational number.
// The string must be in the form "m/n" or "m", where m and n are
// integers in base 10, n is not zero, and either may be negative
// (indicated with a leading hyphen). It is not necessary for m/n to be
// in lowest terms, but the result will be.
func ParseRat(s string) (*big.Rat, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	num, parsed := new(big.Int).SetString(numStr, 10)
	if !parsed {
		return nil, fmt.Errorf("parsing numerator %q: invalid integer", numStr)
	}
	if !ok {
		return new(big.Rat).SetInt(num), nil
	}
	den, parsed := new(big.Int).SetString(denStr, 10)
	if !parsed {
		return nil, fmt.Errorf("parsing denominator %q: invalid integer", denStr)
	}
	return NewRat(num, den)
}
