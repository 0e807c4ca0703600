package ltlparse

import (
	"testing"

	"github.com/ltlmeasure/measure/internal/ltlast"
)

func mustParse(t *testing.T, input string) ltlast.Node {
	t.Helper()
	node, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return node
}

func TestParseConstantsAndLiteral(t *testing.T) {
	if _, ok := mustParse(t, "true").(*ltlast.True); !ok {
		t.Errorf("Parse(true) did not produce *ltlast.True")
	}
	if _, ok := mustParse(t, "false").(*ltlast.False); !ok {
		t.Errorf("Parse(false) did not produce *ltlast.False")
	}
	lit, ok := mustParse(t, "p").(*ltlast.Literal)
	if !ok || lit.Name != "p" {
		t.Errorf("Parse(p) = %#v, want Literal{p}", mustParse(t, "p"))
	}
}

func TestParseUnaryTemporalOperators(t *testing.T) {
	cases := map[string]func(ltlast.Node) bool{
		"!p": func(n ltlast.Node) bool { _, ok := n.(*ltlast.Not); return ok },
		"X p": func(n ltlast.Node) bool { _, ok := n.(*ltlast.Next); return ok },
		"G p": func(n ltlast.Node) bool { _, ok := n.(*ltlast.Globally); return ok },
		"F p": func(n ltlast.Node) bool { _, ok := n.(*ltlast.Eventually); return ok },
	}
	for input, check := range cases {
		if !check(mustParse(t, input)) {
			t.Errorf("Parse(%q) did not produce the expected node kind", input)
		}
	}
}

func TestParseBinaryTemporalOperators(t *testing.T) {
	u, ok := mustParse(t, "p U q").(*ltlast.Until)
	if !ok {
		t.Fatalf("Parse(p U q) = %T, want *ltlast.Until", mustParse(t, "p U q"))
	}
	if _, ok := u.L.(*ltlast.Literal); !ok {
		t.Errorf("Until.L = %T, want *ltlast.Literal", u.L)
	}

	if _, ok := mustParse(t, "p W q").(*ltlast.WeakUntil); !ok {
		t.Errorf("Parse(p W q) did not produce *ltlast.WeakUntil")
	}
	if _, ok := mustParse(t, "p R q").(*ltlast.Release); !ok {
		t.Errorf("Parse(p R q) did not produce *ltlast.Release")
	}
}

func TestParseImpliesAndIff(t *testing.T) {
	if _, ok := mustParse(t, "p -> q").(*ltlast.Implies); !ok {
		t.Errorf("Parse(p -> q) did not produce *ltlast.Implies")
	}
	if _, ok := mustParse(t, "p <-> q").(*ltlast.Iff); !ok {
		t.Errorf("Parse(p <-> q) did not produce *ltlast.Iff")
	}
}

func TestParsePrecedence(t *testing.T) {
	// "&" binds tighter than "|": p | q & r == p | (q & r)
	or, ok := mustParse(t, "p|q&r").(*ltlast.Or)
	if !ok {
		t.Fatalf("expected Or at root, got %T", mustParse(t, "p|q&r"))
	}
	if _, ok := or.R.(*ltlast.And); !ok {
		t.Errorf("expected And on the right of Or, got %T", or.R)
	}

	// "U" binds tighter than "&": p & q U r == p & (q U r)
	and, ok := mustParse(t, "p & q U r").(*ltlast.And)
	if !ok {
		t.Fatalf("expected And at root, got %T", mustParse(t, "p & q U r"))
	}
	if _, ok := and.R.(*ltlast.Until); !ok {
		t.Errorf("expected Until on the right of And, got %T", and.R)
	}

	// "|" binds tighter than "->": p -> q | r == p -> (q | r)
	implies, ok := mustParse(t, "p -> q | r").(*ltlast.Implies)
	if !ok {
		t.Fatalf("expected Implies at root, got %T", mustParse(t, "p -> q | r"))
	}
	if _, ok := implies.R.(*ltlast.Or); !ok {
		t.Errorf("expected Or on the right of Implies, got %T", implies.R)
	}
}

func TestParseUntilLeftAssociative(t *testing.T) {
	// p U q U r == (p U q) U r
	root, ok := mustParse(t, "p U q U r").(*ltlast.Until)
	if !ok {
		t.Fatalf("expected Until at root, got %T", mustParse(t, "p U q U r"))
	}
	if _, ok := root.L.(*ltlast.Until); !ok {
		t.Errorf("expected Until nested on the left, got %T", root.L)
	}
}

func TestParseParenthesizedGrouping(t *testing.T) {
	// (p | q) & r forces Or under And, overriding default precedence.
	and, ok := mustParse(t, "(p|q)&r").(*ltlast.And)
	if !ok {
		t.Fatalf("expected And at root, got %T", mustParse(t, "(p|q)&r"))
	}
	if _, ok := and.L.(*ltlast.Or); !ok {
		t.Errorf("expected Or on the left of And, got %T", and.L)
	}
}

func TestParseIdentifierNotMistakenForKeyword(t *testing.T) {
	// "Up" must lex as a single identifier, not "U" followed by "p".
	lit, ok := mustParse(t, "Up").(*ltlast.Literal)
	if !ok || lit.Name != "Up" {
		t.Errorf("Parse(Up) = %#v, want Literal{Up}", mustParse(t, "Up"))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{"", "(", "p &", "p U", ")", "p q"}
	for _, input := range cases {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected an error, got none", input)
		}
	}
}
