package ltlparse

import (
	"github.com/ltlmeasure/measure/internal/ltlast"
	"github.com/ltlmeasure/measure/internal/measureerr"
)

// Parse parses a surface LTL string (spec §4.8's grammar) into an
// ltlast.Node tree. Identifier text is used verbatim as each Literal's
// stable base name.
func Parse(input string) (ltlast.Node, error) {
	p := &parser{lex: newLexer(input)}
	p.advance()
	node, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, measureerr.New(measureerr.Parse, "unexpected trailing input %q at position %d", p.tok.text, p.tok.pos)
	}
	return node, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() { p.tok = p.lex.next() }

// parseIff := parseImplies ( "<->" parseImplies )*
func (p *parser) parseIff() (ltlast.Node, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIff {
		p.advance()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = &ltlast.Iff{L: left, R: right}
	}
	return left, nil
}

// parseImplies := parseOr ( "->" parseOr )*
func (p *parser) parseImplies() (ltlast.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokImplies {
		p.advance()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = &ltlast.Implies{L: left, R: right}
	}
	return left, nil
}

// parseOr := parseAnd ( "|" parseAnd )*
func (p *parser) parseOr() (ltlast.Node, error) {
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
		left = &ltlast.Or{L: left, R: right}
	}
	return left, nil
}

// parseAnd := parseUntil ( "&" parseUntil )*
func (p *parser) parseAnd() (ltlast.Node, error) {
	left, err := p.parseUntil()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		p.advance()
		right, err := p.parseUntil()
		if err != nil {
			return nil, err
		}
		left = &ltlast.And{L: left, R: right}
	}
	return left, nil
}

// parseUntil := parseUnary ( ( "U" | "W" | "R" ) parseUnary )*
func (p *parser) parseUntil() (ltlast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.kind {
		case tokUntil:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ltlast.Until{L: left, R: right}
		case tokWeak:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ltlast.WeakUntil{L: left, R: right}
		case tokRelease:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ltlast.Release{L: left, R: right}
		default:
			return left, nil
		}
	}
}

// parseUnary := "!" parseUnary | "X" parseUnary | "G" parseUnary | "F" parseUnary | atom
func (p *parser) parseUnary() (ltlast.Node, error) {
	switch p.tok.kind {
	case tokNot:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ltlast.Not{X: x}, nil
	case tokNext:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ltlast.Next{X: x}, nil
	case tokGlobally:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ltlast.Globally{X: x}, nil
	case tokEventually:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ltlast.Eventually{X: x}, nil
	default:
		return p.parseAtom()
	}
}

// atom := "true" | "false" | IDENT | "(" formula ")"
func (p *parser) parseAtom() (ltlast.Node, error) {
	switch p.tok.kind {
	case tokTrue:
		p.advance()
		return &ltlast.True{}, nil
	case tokFalse:
		p.advance()
		return &ltlast.False{}, nil
	case tokIdent:
		name := p.tok.text
		p.advance()
		return &ltlast.Literal{Name: name}, nil
	case tokLParen:
		p.advance()
		node, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, measureerr.New(measureerr.Parse, "expected ')' at position %d", p.tok.pos)
		}
		p.advance()
		return node, nil
	default:
		return nil, measureerr.New(measureerr.Parse, "unexpected token %q at position %d", p.tok.text, p.tok.pos)
	}
}
