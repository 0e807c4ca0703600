package propcnf

// Expr is a propositional expression node: the small AST the CNF
// converter (P2) parses the unroller's output string into before
// Tseitin-transforming it.
type Expr interface {
	isExpr()
}

// Const is a literal true/false value.
type Const struct {
	Value bool
}

// Var references a propositional variable by its unrolled name
// ("p0", "q3", ...).
type Var struct {
	Name string
}

// Not is propositional negation.
type Not struct {
	X Expr
}

// And is propositional conjunction.
type And struct {
	L, R Expr
}

// Or is propositional disjunction.
type Or struct {
	L, R Expr
}

func (*Const) isExpr() {}
func (*Var) isExpr()   {}
func (*Not) isExpr()   {}
func (*And) isExpr()   {}
func (*Or) isExpr()    {}
