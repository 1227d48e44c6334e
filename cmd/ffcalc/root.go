package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/not-chciken/FloppyFloat-sub000/floppyfloat"
	"github.com/spf13/cobra"
	"github.com/x448/float16"
)

var (
	flagFormat      string
	flagRounding    string
	flagPersonality string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffcalc",
		Short: "Exercise the floppyfloat emulator kernel from the command line",
		Long: "ffcalc evaluates one IEEE 754 operation at a time through the floppyfloat\n" +
			"kernel, printing the result's bit pattern, decoded value, and the sticky\n" +
			"exception flags the operation left set.",
	}
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "64", "operand format: 16, 32 or 64")
	cmd.PersistentFlags().StringVar(&flagRounding, "rounding", "ties-even",
		"rounding mode: ties-even, ties-away, to-pos, to-neg, to-zero")
	cmd.PersistentFlags().StringVar(&flagPersonality, "personality", "riscv",
		"host personality: x86, arm, riscv")

	cmd.AddCommand(addCmd(), subCmd(), mulCmd(), divCmd(), sqrtCmd(), fmaCmd(), convCmd(), cmpCmd())
	return cmd
}

// newContext builds a Context from the persistent flags, in the shape
// every subcommand's RunE needs before it can call into the kernel.
func newContext() (*floppyfloat.Context, uint, error) {
	ctx := floppyfloat.NewContext()

	switch flagPersonality {
	case "x86":
		ctx.SetupToX86()
	case "arm":
		ctx.SetupToArm()
	case "riscv":
		ctx.SetupToRiscv()
	default:
		return nil, 0, fmt.Errorf("unknown personality %q (want x86, arm or riscv)", flagPersonality)
	}

	switch flagRounding {
	case "ties-even":
		ctx.SetRounding(floppyfloat.RoundTiesToEven)
	case "ties-away":
		ctx.SetRounding(floppyfloat.RoundTiesToAway)
	case "to-pos":
		ctx.SetRounding(floppyfloat.RoundTowardPositive)
	case "to-neg":
		ctx.SetRounding(floppyfloat.RoundTowardNegative)
	case "to-zero":
		ctx.SetRounding(floppyfloat.RoundTowardZero)
	default:
		return nil, 0, fmt.Errorf("unknown rounding mode %q", flagRounding)
	}

	var width uint
	switch flagFormat {
	case "16":
		width = 16
	case "32":
		width = 32
	case "64":
		width = 64
	default:
		return nil, 0, fmt.Errorf("unknown format %q (want 16, 32 or 64)", flagFormat)
	}
	return ctx, width, nil
}

// encodeFloat parses a decimal literal (also accepting "inf", "-inf",
// "nan") and packs it into width's bit pattern, widened to uint64.
func encodeFloat(width uint, s string) (uint64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	switch width {
	case 16:
		return uint64(float16.Fromfloat32(float32(v))), nil
	case 32:
		return uint64(math.Float32bits(float32(v))), nil
	default:
		return math.Float64bits(v), nil
	}
}

// decodeFloat renders width's bits back to a Go float64 for display.
func decodeFloat(width uint, bits uint64) float64 {
	switch width {
	case 16:
		return float64(float16.Float16(uint16(bits)).Float32())
	case 32:
		return float64(math.Float32frombits(uint32(bits)))
	default:
		return math.Float64frombits(bits)
	}
}

func bitsHexWidth(width uint) int {
	switch width {
	case 16:
		return 4
	case 32:
		return 8
	default:
		return 16
	}
}

func printResult(width uint, bits uint64, flags floppyfloat.Flags) {
	fmt.Printf("= 0x%0*x  (%v)\n", bitsHexWidth(width), bits, decodeFloat(width, bits))
	printFlags(flags)
}

func printFlags(flags floppyfloat.Flags) {
	fmt.Printf("flags: invalid=%v divByZero=%v overflow=%v underflow=%v inexact=%v\n",
		flags.Invalid(), flags.DivisionByZero(), flags.Overflow(), flags.Underflow(), flags.Inexact())
}
