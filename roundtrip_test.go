package padic_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	padic "github.com/SnootierMoon/p-adic-playground"
)

var RoundTripRats = []*big.Rat{
	big.NewRat(0, 1),
	big.NewRat(1, 1),
	big.NewRat(-1, 1),
	big.NewRat(5, 1),
	big.NewRat(-5, 3),
	big.NewRat(7, 12),
	big.NewRat(22, 7),
	big.NewRat(1, 16),
	big.NewRat(-1, 16),
	big.NewRat(100, 9),
	big.NewRat(-360, 92821),
	big.NewRat(123456789, 987654321),
	new(big.Rat).SetFrac(mustBig("123456789012345678901234567890"), mustBig("97")),
}

var RoundTripPrimes = []int64{2, 3, 5, 7, 13, 101}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer literal " + s)
	}
	return n
}

// Converting to a p-adic expansion and back must reproduce the input
// exactly, with or without simplification in between.
func TestRoundTrip(t *testing.T) {
	for _, r := range RoundTripRats {
		for _, p := range RoundTripPrimes {
			t.Run(fmt.Sprintf("%s@%d", r.RatString(), p), func(t *testing.T) {
				e, err := padic.FromRat(r, p)
				require.NoError(t, err)
				require.Zero(t, e.Rat().Cmp(r), "raw expansion: got %s, want %s", e.Rat().RatString(), r.RatString())
				s := e.Simplify()
				require.Zero(t, s.Rat().Cmp(r), "simplified expansion: got %s, want %s", s.Rat().RatString(), r.RatString())
			})
		}
	}
}

// Simplify is idempotent: a second pass must return an identical value.
func TestSimplifyIdempotent(t *testing.T) {
	for _, r := range RoundTripRats {
		for _, p := range RoundTripPrimes {
			t.Run(fmt.Sprintf("%s@%d", r.RatString(), p), func(t *testing.T) {
				e, err := padic.FromRat(r, p)
				require.NoError(t, err)
				once := e.Simplify()
				twice := once.Simplify()
				if diff := cmp.Diff(once, twice); diff != "" {
					t.Errorf("second Simplify changed the expansion (-once +twice):\n%s", diff)
				}
			})
		}
	}
	for _, c := range SimplifyCases {
		t.Run(c.Name, func(t *testing.T) {
			once := c.In.Simplify()
			twice := once.Simplify()
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("second Simplify changed the expansion (-once +twice):\n%s", diff)
			}
		})
	}
}

// After simplification no proper divisor of the period reproduces the
// repeating block, i.e. the period is minimal.
func TestSimplifyMinimalPeriod(t *testing.T) {
	for _, r := range RoundTripRats {
		for _, p := range RoundTripPrimes {
			t.Run(fmt.Sprintf("%s@%d", r.RatString(), p), func(t *testing.T) {
				e, err := padic.FromRat(r, p)
				require.NoError(t, err)
				s := e.Simplify()
				digits := s.Digits()
				repeat := s.RepeatIndex()
				period := s.Period()
				for i := 1; i < period; i++ {
					if period%i != 0 {
						continue
					}
					same := true
					for j := repeat + i; j < len(digits); j++ {
						if digits[j] != digits[j-i] {
							same = false
							break
						}
					}
					require.False(t, same, "period %d reducible to %d", period, i)
				}
			})
		}
	}
}

// Combining commutes with the rational field operation it implements:
// for modular digit addition at p=2 over integers, that is XOR.
func TestCombineMatchesXor(t *testing.T) {
	for a := int64(0); a < 16; a++ {
		for b := int64(0); b < 16; b++ {
			x, err := padic.FromRat(big.NewRat(a, 1), 2)
			require.NoError(t, err)
			y, err := padic.FromRat(big.NewRat(b, 1), 2)
			require.NoError(t, err)
			z, err := x.TryCombine(y, padic.SumDigits(2))
			require.NoError(t, err)
			got := z.Simplify().Rat()
			require.Zero(t, got.Cmp(big.NewRat(a^b, 1)),
				"%d xor %d: got %s, want %d", a, b, got.RatString(), a^b)
		}
	}
}
