// Command padic computes the digit-wise p-adic sum of two rational
// numbers and prints the operands and the result in both representations.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	padic "github.com/SnootierMoon/p-adic-playground"
)

func newRootCmd() *cobra.Command {
	var prime int64
	cmd := &cobra.Command{
		Use:   "padic <numerA> <denomA> <numerB> <denomB>",
		Short: "digit-wise sum of two rationals in the p-adic field",
		Long: `padic converts two rational numbers to their p-adic expansions, adds
them digit by digit modulo p, and converts the result back to a
rational. For p=2, the digit-wise sum is the XOR of the two numbers.`,
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, prime)
		},
	}
	cmd.Flags().Int64VarP(&prime, "prime", "p", 2, "prime base of the expansions")
	return cmd
}

func run(cmd *cobra.Command, args []string, p int64) error {
	ints := make([]*big.Int, len(args))
	for i, arg := range args {
		n, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return fmt.Errorf("argument %q is not an integer", arg)
		}
		ints[i] = n
	}
	ratA, err := padic.NewRat(ints[0], ints[1])
	if err != nil {
		return fmt.Errorf("invalid A: %w", err)
	}
	ratB, err := padic.NewRat(ints[2], ints[3])
	if err != nil {
		return fmt.Errorf("invalid B: %w", err)
	}
	expA, err := padic.FromRat(ratA, p)
	if err != nil {
		return fmt.Errorf("converting A: %w", err)
	}
	expB, err := padic.FromRat(ratB, p)
	if err != nil {
		return fmt.Errorf("converting B: %w", err)
	}
	sum := expA.Combine(expB, padic.SumDigits(p)).Simplify()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "A is %s; as a %d-adic, that's %s\n", ratA.RatString(), p, expA)
	fmt.Fprintf(out, "B is %s; as a %d-adic, that's %s\n", ratB.RatString(), p, expB)
	fmt.Fprintf(out, "The digit-wise sum A ⊕ B is %s\n", sum)
	fmt.Fprintf(out, "As a ratio, A ⊕ B is %s\n", sum.Rat().RatString())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
