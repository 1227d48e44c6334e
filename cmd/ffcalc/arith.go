package main

import (
	"github.com/not-chciken/FloppyFloat-sub000/floppyfloat"
	"github.com/spf13/cobra"
)

// binaryOp dispatches a two-operand kernel call to the width-specific
// method, widening every argument and result through uint64 so the rest
// of the command layer can stay format-agnostic.
func binaryOp(width uint, ctx *floppyfloat.Context, a, b uint64,
	op16 func(a, b uint16) uint16, op32 func(a, b uint32) uint32, op64 func(a, b uint64) uint64) uint64 {
	switch width {
	case 16:
		return uint64(op16(uint16(a), uint16(b)))
	case 32:
		return uint64(op32(uint32(a), uint32(b)))
	default:
		return op64(a, b)
	}
}

func runBinary(cmd *cobra.Command, args []string,
	op16 func(ctx *floppyfloat.Context, a, b uint16) uint16,
	op32 func(ctx *floppyfloat.Context, a, b uint32) uint32,
	op64 func(ctx *floppyfloat.Context, a, b uint64) uint64) error {
	ctx, width, err := newContext()
	if err != nil {
		return err
	}
	a, err := encodeFloat(width, args[0])
	if err != nil {
		return err
	}
	b, err := encodeFloat(width, args[1])
	if err != nil {
		return err
	}
	result := binaryOp(width, ctx, a, b,
		func(a, b uint16) uint16 { return op16(ctx, a, b) },
		func(a, b uint32) uint32 { return op32(ctx, a, b) },
		func(a, b uint64) uint64 { return op64(ctx, a, b) })
	printResult(width, result, ctx.Flags())
	return nil
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add a b",
		Short: "a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(cmd, args, (*floppyfloat.Context).Add16, (*floppyfloat.Context).Add32, (*floppyfloat.Context).Add64)
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub a b",
		Short: "a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(cmd, args, (*floppyfloat.Context).Sub16, (*floppyfloat.Context).Sub32, (*floppyfloat.Context).Sub64)
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul a b",
		Short: "a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(cmd, args, (*floppyfloat.Context).Mul16, (*floppyfloat.Context).Mul32, (*floppyfloat.Context).Mul64)
		},
	}
}

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div a b",
		Short: "a / b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(cmd, args, (*floppyfloat.Context).Div16, (*floppyfloat.Context).Div32, (*floppyfloat.Context).Div64)
		},
	}
}

func sqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt a",
		Short: "sqrt(a)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, width, err := newContext()
			if err != nil {
				return err
			}
			a, err := encodeFloat(width, args[0])
			if err != nil {
				return err
			}
			var result uint64
			switch width {
			case 16:
				result = uint64(ctx.Sqrt16(uint16(a)))
			case 32:
				result = uint64(ctx.Sqrt32(uint32(a)))
			default:
				result = ctx.Sqrt64(a)
			}
			printResult(width, result, ctx.Flags())
			return nil
		},
	}
}

func fmaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fma a b c",
		Short: "a*b + c, rounded once",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, width, err := newContext()
			if err != nil {
				return err
			}
			a, err := encodeFloat(width, args[0])
			if err != nil {
				return err
			}
			b, err := encodeFloat(width, args[1])
			if err != nil {
				return err
			}
			c, err := encodeFloat(width, args[2])
			if err != nil {
				return err
			}
			var result uint64
			switch width {
			case 16:
				result = uint64(ctx.Fma16(uint16(a), uint16(b), uint16(c)))
			case 32:
				result = uint64(ctx.Fma32(uint32(a), uint32(b), uint32(c)))
			default:
				result = ctx.Fma64(a, b, c)
			}
			printResult(width, result, ctx.Flags())
			return nil
		},
	}
}
