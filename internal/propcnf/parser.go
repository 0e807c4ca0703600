// Package propcnf implements the propositional CNF converter and DIMACS
// codec (P2/P3): it parses the unroller's output string back into a
// small expression tree, Tseitin-transforms it to CNF, and serializes
// that CNF to DIMACS text with deterministic variable numbering.
package propcnf

import (
	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/measureerr"
)

// VarTable assigns each distinct variable name a 1-indexed DIMACS id in
// first-occurrence order, which is what makes DIMACS output for a given
// propositional string deterministic and therefore safe to use as a
// textual memoization key (spec §4.6).
type VarTable struct {
	order []string
	ids   map[string]int
}

func newVarTable() *VarTable {
	return &VarTable{ids: make(map[string]int)}
}

// IDFor returns name's DIMACS variable id, assigning the next id the
// first time name is seen.
func (vt *VarTable) IDFor(name string) int {
	if id, ok := vt.ids[name]; ok {
		return id
	}
	id := len(vt.order) + 1
	vt.ids[name] = id
	vt.order = append(vt.order, name)
	return id
}

// Len returns the number of distinct variables assigned so far.
func (vt *VarTable) Len() int { return len(vt.order) }

// Parse parses a propositional expression string written over sym (the
// same symbol set the unroller used to produce it) into an Expr tree,
// assigning DIMACS variable ids to every identifier it encounters in the
// returned VarTable.
func Parse(input string, sym config.SymbolSet) (Expr, *VarTable, error) {
	p := &parser{lex: newLexer(input, sym), vars: newVarTable()}
	p.advance()
	e, err := p.parseOr()
	if err != nil {
		return nil, nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, nil, measureerr.New(measureerr.Parse, "unexpected trailing input %q in propositional expression", p.tok.text)
	}
	return e, p.vars, nil
}

type parser struct {
	lex  *lexer
	tok  token
	vars *VarTable
}

func (p *parser) advance() { p.tok = p.lex.next() }

// parseOr := parseAnd (OR parseAnd)*
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{L: left, R: right}
	}
	return left, nil
}

// parseAnd := parseUnary (AND parseUnary)*
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &And{L: left, R: right}
	}
	return left, nil
}

// parseUnary := NOT parseUnary | atom
func (p *parser) parseUnary() (Expr, error) {
	if p.tok.kind == tokNot {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{X: x}, nil
	}
	return p.parseAtom()
}

// atom := TRUE | FALSE | IDENT | '(' parseOr ')'
func (p *parser) parseAtom() (Expr, error) {
	switch p.tok.kind {
	case tokTrue:
		p.advance()
		return &Const{Value: true}, nil
	case tokFalse:
		p.advance()
		return &Const{Value: false}, nil
	case tokIdent:
		name := p.tok.text
		p.advance()
		p.vars.IDFor(name)
		return &Var{Name: name}, nil
	case tokLParen:
		p.advance()
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, measureerr.New(measureerr.Parse, "expected ')' in propositional expression")
		}
		p.advance()
		return e, nil
	default:
		return nil, measureerr.New(measureerr.Parse, "unexpected token %q in propositional expression", p.tok.text)
	}
}
