// Command ffcalc is a small command-line front end over the floppyfloat
// kernel: one subcommand per operation, each taking --format,
// --rounding and --personality flags and printing the resulting bit
// pattern, decoded value, and sticky flags. It exists purely as a
// consumer exercising the library end to end; the kernel itself has no
// CLI, file format, or other external surface of its own.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
