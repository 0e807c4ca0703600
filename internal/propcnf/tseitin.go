package propcnf

import (
	"fmt"
	"strconv"
	"strings"
)

// CNF is the Tseitin-transformed result of an Expr. A constant-valued
// root short-circuits to ConstTrue/ConstFalse with no variables or
// clauses at all (spec §4.6 step 2: "If the CNF is the constant False ->
// return 0. If True -> return 1", handled by the bridge before ever
// reaching the external counter).
type CNF struct {
	NVars      int
	OrigVars   int
	Clauses    [][]int
	ConstTrue  bool
	ConstFalse bool
}

// ToCNF Tseitin-transforms e (whose variables are already registered in
// vt) into CNF. One auxiliary variable is introduced per internal
// Not/And/Or node; the root auxiliary variable is asserted as a unit
// clause. NVars counts every variable in the DIMACS output (originals
// plus Tseitin auxiliaries); OrigVars counts only the originals
// registered in vt, which is what the model count must be normalized
// against — each auxiliary is functionally determined by the originals,
// so it never changes how many of the 2^OrigVars original assignments
// satisfy e.
func ToCNF(e Expr, vt *VarTable) *CNF {
	if c, ok := e.(*Const); ok {
		return &CNF{ConstTrue: c.Value, ConstFalse: !c.Value}
	}

	t := &tseitin{nextVar: vt.Len() + 1}
	root := t.encode(e, vt)
	t.addClause(root)
	return &CNF{NVars: t.nextVar - 1, OrigVars: vt.Len(), Clauses: t.clauses}
}

type tseitin struct {
	nextVar int
	clauses [][]int
}

func (t *tseitin) freshVar() int {
	v := t.nextVar
	t.nextVar++
	return v
}

func (t *tseitin) addClause(lits ...int) {
	clause := make([]int, len(lits))
	copy(clause, lits)
	t.clauses = append(t.clauses, clause)
}

// encode returns the id of a variable equivalent to e's truth value,
// emitting the Tseitin equivalence clauses for every internal node along
// the way. Recursion always encodes the left child before the right,
// which combined with VarTable's first-occurrence numbering makes the
// whole conversion deterministic for a given input string.
func (t *tseitin) encode(e Expr, vt *VarTable) int {
	switch x := e.(type) {
	case *Const:
		v := t.freshVar()
		if x.Value {
			t.addClause(v)
		} else {
			t.addClause(-v)
		}
		return v

	case *Var:
		return vt.IDFor(x.Name)

	case *Not:
		a := t.encode(x.X, vt)
		v := t.freshVar()
		// v <-> !a
		t.addClause(-v, -a)
		t.addClause(v, a)
		return v

	case *And:
		a := t.encode(x.L, vt)
		b := t.encode(x.R, vt)
		v := t.freshVar()
		// v <-> (a & b)
		t.addClause(-v, a)
		t.addClause(-v, b)
		t.addClause(-a, -b, v)
		return v

	case *Or:
		a := t.encode(x.L, vt)
		b := t.encode(x.R, vt)
		v := t.freshVar()
		// v <-> (a | b)
		t.addClause(-a, v)
		t.addClause(-b, v)
		t.addClause(a, b, -v)
		return v

	default:
		panic(fmt.Sprintf("propcnf: unsupported expr kind %T reached Tseitin encoding", e))
	}
}

// DIMACS serializes c to the standard DIMACS CNF text format. Callers
// must not invoke this on a CNF where ConstTrue or ConstFalse is set —
// those are resolved by the bridge before DIMACS is ever needed.
func (c *CNF) DIMACS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.NVars, len(c.Clauses))
	for _, clause := range c.Clauses {
		parts := make([]string, len(clause)+1)
		for i, lit := range clause {
			parts[i] = strconv.Itoa(lit)
		}
		parts[len(clause)] = "0"
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
