package main

import "testing"

func TestParseDIMACS(t *testing.T) {
	input := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	f, err := parseDIMACS([]byte(input))
	if err != nil {
		t.Fatalf("parseDIMACS: %v", err)
	}
	if f.nvars != 3 {
		t.Errorf("nvars = %d, want 3", f.nvars)
	}
	if len(f.clauses) != 2 {
		t.Fatalf("len(clauses) = %d, want 2", len(f.clauses))
	}
	if f.clauses[0][0] != 1 || f.clauses[0][1] != -2 {
		t.Errorf("clauses[0] = %v, want [1 -2]", f.clauses[0])
	}
}

func TestParseDIMACSClauseSpansLines(t *testing.T) {
	input := "p cnf 2 1\n1\n-2\n0\n"
	f, err := parseDIMACS([]byte(input))
	if err != nil {
		t.Fatalf("parseDIMACS: %v", err)
	}
	if len(f.clauses) != 1 || len(f.clauses[0]) != 2 {
		t.Errorf("clauses = %v, want one clause of length 2", f.clauses)
	}
}

func TestParseDIMACSErrors(t *testing.T) {
	cases := []string{
		"",
		"1 -2 0\n",           // missing header
		"p cnf 1 2\n1 0\n",   // clause count mismatch
		"p cnf 1 1\n1\n",     // unterminated clause
		"p wrong 1 1\n1 0\n", // bad header keyword
		"p cnf x 1\n1 0\n",   // non-numeric nvars
	}
	for _, input := range cases {
		if _, err := parseDIMACS([]byte(input)); err == nil {
			t.Errorf("parseDIMACS(%q): expected an error, got none", input)
		}
	}
}
