package main

import (
	"fmt"
	"strconv"

	"github.com/not-chciken/FloppyFloat-sub000/floppyfloat"
	"github.com/spf13/cobra"
)

var flagConvTo string

// convCmd converts a single operand from --format to --to, which names
// either another float format (16, 32, 64) or an integer target (i32,
// u32, i64, u64).
func convCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conv a",
		Short: "convert a from --format to --to",
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

			from := formatFor(width)
			switch flagConvTo {
			case "16", "32", "64":
				toWidth := map[string]uint{"16": 16, "32": 32, "64": 64}[flagConvTo]
				to := formatFor(toWidth)
				var result uint64
				if toWidth > width {
					result = ctx.WidenFloat(from, to, a)
				} else if toWidth < width {
					result = ctx.NarrowFloat(from, to, a)
				} else {
					result = a
				}
				printResult(toWidth, result, ctx.Flags())
			case "i32":
				fmt.Printf("= %d\n", intResult(ctx, width, a, "i32"))
				printFlags(ctx.Flags())
			case "u32":
				fmt.Printf("= %d\n", intResult(ctx, width, a, "u32"))
				printFlags(ctx.Flags())
			case "i64":
				fmt.Printf("= %d\n", intResult(ctx, width, a, "i64"))
				printFlags(ctx.Flags())
			case "u64":
				fmt.Printf("= %d\n", intResult(ctx, width, a, "u64"))
				printFlags(ctx.Flags())
			default:
				return fmt.Errorf("unknown --to %q (want 16, 32, 64, i32, u32, i64 or u64)", flagConvTo)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagConvTo, "to", "64", "conversion target: 16, 32, 64, i32, u32, i64, u64")
	return cmd
}

func formatFor(width uint) floppyfloat.Format {
	switch width {
	case 16:
		return floppyfloat.Binary16
	case 32:
		return floppyfloat.Binary32
	default:
		return floppyfloat.Binary64
	}
}

func intResult(ctx *floppyfloat.Context, width uint, a uint64, target string) int64 {
	switch width {
	case 16:
		switch target {
		case "i32":
			return int64(ctx.F16ToI32(uint16(a)))
		case "u32":
			return int64(ctx.F16ToU32(uint16(a)))
		case "i64":
			return ctx.F16ToI64(uint16(a))
		default:
			return int64(ctx.F16ToU64(uint16(a)))
		}
	case 32:
		switch target {
		case "i32":
			return int64(ctx.F32ToI32(uint32(a)))
		case "u32":
			return int64(ctx.F32ToU32(uint32(a)))
		case "i64":
			return ctx.F32ToI64(uint32(a))
		default:
			return int64(ctx.F32ToU64(uint32(a)))
		}
	default:
		switch target {
		case "i32":
			return int64(ctx.F64ToI32(a))
		case "u32":
			return int64(ctx.F64ToU32(a))
		case "i64":
			return ctx.F64ToI64(a)
		default:
			return int64(ctx.F64ToU64(a))
		}
	}
}

var flagCmpOp string
var flagCmpSignaling bool

func cmpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp a b",
		Short: "compare a and b with --op (eq, lt, le)",
		Args:  cobra.ExactArgs(2),
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
			result, err := compareResult(ctx, width, a, b, flagCmpOp, flagCmpSignaling)
			if err != nil {
				return err
			}
			fmt.Printf("= %s\n", strconv.FormatBool(result))
			printFlags(ctx.Flags())
			return nil
		},
	}
	cmd.Flags().StringVar(&flagCmpOp, "op", "eq", "comparison: eq, lt, le")
	cmd.Flags().BoolVar(&flagCmpSignaling, "signaling", false, "use the signaling flavor (Invalid on any NaN, not just sNaN)")
	return cmd
}

func compareResult(ctx *floppyfloat.Context, width uint, a, b uint64, op string, signaling bool) (bool, error) {
	pick := func(q, s func(a, b uint64) bool) bool {
		if signaling {
			return s(a, b)
		}
		return q(a, b)
	}
	switch width {
	case 16:
		wrap := func(f func(a, b uint16) bool) func(a, b uint64) bool {
			return func(a, b uint64) bool { return f(uint16(a), uint16(b)) }
		}
		return dispatchCmp(op, pick,
			wrap(ctx.Eq16), wrap(ctx.EqSignaling16), wrap(ctx.Lt16), wrap(ctx.LtSignaling16), wrap(ctx.Le16), wrap(ctx.LeSignaling16))
	case 32:
		wrap := func(f func(a, b uint32) bool) func(a, b uint64) bool {
			return func(a, b uint64) bool { return f(uint32(a), uint32(b)) }
		}
		return dispatchCmp(op, pick,
			wrap(ctx.Eq32), wrap(ctx.EqSignaling32), wrap(ctx.Lt32), wrap(ctx.LtSignaling32), wrap(ctx.Le32), wrap(ctx.LeSignaling32))
	default:
		return dispatchCmp(op, pick,
			ctx.Eq64, ctx.EqSignaling64, ctx.Lt64, ctx.LtSignaling64, ctx.Le64, ctx.LeSignaling64)
	}
}

func dispatchCmp(op string, pick func(q, s func(a, b uint64) bool) bool,
	eq, eqS, lt, ltS, le, leS func(a, b uint64) bool) (bool, error) {
	switch op {
	case "eq":
		return pick(eq, eqS), nil
	case "lt":
		return pick(lt, ltS), nil
	case "le":
		return pick(le, leS), nil
	default:
		return false, fmt.Errorf("unknown --op %q (want eq, lt or le)", op)
	}
}
