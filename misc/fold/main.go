package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	bigfloat "github.com/constfold/bigfloat"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// This is a cheap-and-nasty tool for poking at the constant folder's float
// arithmetic from the command line. It folds one binary expression at full
// precision, then shows what each native width would receive, next to the
// result of doing the same operation directly in float64.
//
// It is not part of the package API and nothing depends on it.

var (
	foldDump bool
	foldJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "fold <lhs> <op> <rhs>",
	Short: "Fold one float expression at 128 bits",
	Long: `Fold one binary float expression at 128 bits and show the result
narrowed to each native width.

ops: + - * / quotrunc quofloor rem mod cmp

Examples:
    fold 1 / 3
    fold -- -7 mod 2
    fold 1e300 '*' 1e300 --json`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFold,
}

func init() {
	rootCmd.Flags().BoolVar(&foldDump, "dump", false, "spew the internal representation of the result")
	rootCmd.Flags().BoolVar(&foldJSON, "json", false, "print the result as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type foldResult struct {
	Expr     string
	Result   bigfloat.Float
	Float32  string
	Float64  string
	Native   string `json:",omitempty"`
	Float128 string
	Fraction bool
}

func runFold(cmd *cobra.Command, args []string) error {
	lhsStr, op, rhsStr := args[0], args[1], args[2]

	lhs, err := bigfloat.Parse(lhsStr)
	if err != nil {
		return err
	}
	rhs, err := bigfloat.Parse(rhsStr)
	if err != nil {
		return err
	}

	var result bigfloat.Float
	var native *float64

	lf, _ := strconv.ParseFloat(lhsStr, 64)
	rf, _ := strconv.ParseFloat(rhsStr, 64)
	nativeOp := func(v float64) *float64 { return &v }

	switch op {
	case "+":
		result, native = lhs.Add(rhs), nativeOp(lf+rf)
	case "-":
		result, native = lhs.Sub(rhs), nativeOp(lf-rf)
	case "*":
		result, native = lhs.Mul(rhs), nativeOp(lf*rf)
	case "/":
		result, native = lhs.Quo(rhs), nativeOp(lf/rf)
	case "quotrunc":
		result = lhs.QuoTrunc(rhs)
	case "quofloor":
		result = lhs.QuoFloor(rhs)
	case "rem":
		result = lhs.Rem(rhs)
	case "mod":
		result = lhs.Mod(rhs)
	case "cmp":
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s: %s\n", lhs, op, rhs, lhs.Cmp(rhs))
		return nil
	default:
		return fmt.Errorf("unknown op %q", op)
	}

	hi, lo := result.Float128().Bits()
	out := foldResult{
		Expr:     fmt.Sprintf("%s %s %s", lhs, op, rhs),
		Result:   result,
		Float32:  strconv.FormatFloat(float64(result.Float32()), 'g', -1, 32),
		Float64:  strconv.FormatFloat(result.Float64(), 'g', -1, 64),
		Float128: fmt.Sprintf("%#016x%016x", hi, lo),
		Fraction: result.HasFraction(),
	}
	if native != nil {
		out.Native = strconv.FormatFloat(*native, 'g', -1, 64)
	}

	w := cmd.OutOrStdout()
	if foldJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "%s = %s\n", out.Expr, out.Result)
		fmt.Fprintf(w, "f32:  %s\n", out.Float32)
		if native != nil {
			fmt.Fprintf(w, "f64:  %s (native f64: %s)\n", out.Float64, out.Native)
		} else {
			fmt.Fprintf(w, "f64:  %s\n", out.Float64)
		}
		fmt.Fprintf(w, "f128: %s\n", out.Float128)
		fmt.Fprintf(w, "fraction:%v int:%v\n", out.Fraction, result.IsInt())
	}

	if foldDump {
		spew.Fdump(w, result)
	}
	return nil
}
