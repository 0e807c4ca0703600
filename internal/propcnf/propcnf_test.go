package propcnf

import (
	"testing"

	"github.com/ltlmeasure/measure/internal/config"
)

func mustParse(t *testing.T, input string) (Expr, *VarTable) {
	t.Helper()
	e, vt, err := Parse(input, config.OutputSymbols)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return e, vt
}

func TestParseConstants(t *testing.T) {
	e, _ := mustParse(t, "T")
	if c, ok := e.(*Const); !ok || !c.Value {
		t.Errorf("Parse(T) = %#v, want Const{true}", e)
	}
	e, _ = mustParse(t, "F")
	if c, ok := e.(*Const); !ok || c.Value {
		t.Errorf("Parse(F) = %#v, want Const{false}", e)
	}
}

func TestParsePrecedence(t *testing.T) {
	// "&" binds tighter than "|": p0 | q0 & r0 == p0 | (q0 & r0)
	e, _ := mustParse(t, "p0|q0&r0")
	or, ok := e.(*Or)
	if !ok {
		t.Fatalf("expected Or at root, got %T", e)
	}
	if _, ok := or.R.(*And); !ok {
		t.Errorf("expected And on the right of Or, got %T", or.R)
	}
}

func TestParseParenthesizedAndNot(t *testing.T) {
	e, _ := mustParse(t, "!(p0&q0)")
	not, ok := e.(*Not)
	if !ok {
		t.Fatalf("expected Not at root, got %T", e)
	}
	if _, ok := not.X.(*And); !ok {
		t.Errorf("expected And inside Not, got %T", not.X)
	}
}

// countSatisfyingAssignments exhaustively counts satisfying assignments
// of a CNF formula, used only to cross-check Tseitin's output against the
// original expression's satisfiability, independent of Tseitin's own
// logic.
func countSatisfyingAssignments(nvars int, clauses [][]int) int {
	count := 0
	for assignment := 0; assignment < (1 << uint(nvars)); assignment++ {
		if satisfies(assignment, clauses) {
			count++
		}
	}
	return count
}

func satisfies(assignment int, clauses [][]int) bool {
	for _, clause := range clauses {
		ok := false
		for _, lit := range clause {
			v := lit
			neg := v < 0
			if neg {
				v = -v
			}
			bit := (assignment>>uint(v-1))&1 == 1
			if bit != neg {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// evalExpr evaluates e directly against an assignment, used as the
// ground truth that Tseitin's auxiliary-variable encoding must agree
// with once restricted to the original variables.
func evalExpr(e Expr, vt *VarTable, assignment int) bool {
	switch x := e.(type) {
	case *Const:
		return x.Value
	case *Var:
		id := vt.IDFor(x.Name)
		return (assignment>>uint(id-1))&1 == 1
	case *Not:
		return !evalExpr(x.X, vt, assignment)
	case *And:
		return evalExpr(x.L, vt, assignment) && evalExpr(x.R, vt, assignment)
	case *Or:
		return evalExpr(x.L, vt, assignment) || evalExpr(x.R, vt, assignment)
	}
	panic("unreachable")
}

func TestTseitinPreservesModelCount(t *testing.T) {
	cases := []string{
		"p0",
		"!p0",
		"(p0&q0)",
		"(p0|q0)",
		"((p0&q0)|(!p0&!q0))",
		"(p0&(q0|r0))",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			e, vt := mustParse(t, input)
			cnf := ToCNF(e, vt)
			nOrig := vt.Len()

			// Count, over the original variables only, how many
			// assignments the Tseitin CNF admits when the auxiliary
			// variables are existentially quantified (i.e. any
			// satisfying extension exists), and compare against direct
			// evaluation of the parsed expression.
			wantCount := 0
			for a := 0; a < (1 << uint(nOrig)); a++ {
				if evalExpr(e, vt, a) {
					wantCount++
				}
			}

			gotCount := 0
			for a := 0; a < (1 << uint(nOrig)); a++ {
				if extendsToSatisfying(a, nOrig, cnf) {
					gotCount++
				}
			}

			if gotCount != wantCount {
				t.Errorf("Tseitin model count mismatch for %q: got %d, want %d", input, gotCount, wantCount)
			}
		})
	}
}

// extendsToSatisfying reports whether the partial assignment over the
// first nOrig variables can be extended over the auxiliary variables to
// satisfy cnf.
func extendsToSatisfying(partial int, nOrig int, cnf *CNF) bool {
	nAux := cnf.NVars - nOrig
	for auxBits := 0; auxBits < (1 << uint(nAux)); auxBits++ {
		full := partial | (auxBits << uint(nOrig))
		if satisfies(full, cnf.Clauses) {
			return true
		}
	}
	return nAux == 0 && satisfies(partial, cnf.Clauses)
}

func TestDIMACSIsDeterministic(t *testing.T) {
	e1, vt1 := mustParse(t, "(p0&q0)")
	e2, vt2 := mustParse(t, "(p0&q0)")
	d1 := ToCNF(e1, vt1).DIMACS()
	d2 := ToCNF(e2, vt2).DIMACS()
	if d1 != d2 {
		t.Errorf("DIMACS output not deterministic:\n%s\n---\n%s", d1, d2)
	}
}
