// Command satcount is the external #SAT counter binary (spec §4.10): it
// reads a DIMACS CNF file and writes the exact number of satisfying
// assignments as a "# solutions" / "# END" block to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <dimacs-file>\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "satcount: reading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	formula, err := parseDIMACS(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "satcount: parsing %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	count := countModels(formula)

	fmt.Println("# solutions")
	fmt.Println(count)
	fmt.Println("# END")
}
