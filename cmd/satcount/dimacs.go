package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// cnf is the in-memory form of a parsed DIMACS CNF file.
type cnf struct {
	nvars   int
	clauses [][]int
}

// parseDIMACS parses the "p cnf <nvars> <nclauses>" header format: comment
// lines starting with 'c', one header line, then whitespace-separated
// signed literals terminated by 0, possibly spanning multiple lines.
func parseDIMACS(data []byte) (*cnf, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var nvars, nclauses int
	headerSeen := false
	var clauses [][]int
	var current []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if !headerSeen {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("expected 'p cnf <nvars> <nclauses>' header, got %q", line)
			}
			var err error
			nvars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("invalid variable count %q: %w", fields[2], err)
			}
			nclauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("invalid clause count %q: %w", fields[3], err)
			}
			headerSeen = true
			continue
		}

		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid literal token %q: %w", tok, err)
			}
			if n == 0 {
				clauses = append(clauses, current)
				current = nil
				continue
			}
			current = append(current, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading DIMACS input: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("missing 'p cnf' header")
	}
	if len(current) != 0 {
		return nil, fmt.Errorf("final clause not terminated by 0")
	}
	if len(clauses) != nclauses {
		return nil, fmt.Errorf("header declares %d clauses, found %d", nclauses, len(clauses))
	}

	return &cnf{nvars: nvars, clauses: clauses}, nil
}
