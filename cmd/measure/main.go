// Command measure computes the probability that a random finite-horizon
// Boolean trace satisfies a bounded LTL formula, or the symmetric-difference
// distance between two formulas (spec §6).
package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ltlmeasure/measure/pkg/cli"
)

func main() {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, color))
}
