package propcnf

import (
	"unicode"
	"unicode/utf8"

	"github.com/ltlmeasure/measure/internal/config"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
	tokTrue
	tokFalse
	tokIdent
)

type token struct {
	kind tokenKind
	text string
}

// lexer tokenizes a propositional expression string produced by the
// unroller, over the given output symbol set. It follows the same
// position/readPosition/ch scanning shape used throughout this codebase's
// other hand-written lexers.
type lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	sym          config.SymbolSet
}

func newLexer(input string, sym config.SymbolSet) *lexer {
	l := &lexer{input: input, sym: sym}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) next() token {
	l.skipSpace()

	switch {
	case l.ch == 0:
		return token{kind: tokEOF}
	case l.ch == '(':
		l.readChar()
		return token{kind: tokLParen, text: "("}
	case l.ch == ')':
		l.readChar()
		return token{kind: tokRParen, text: ")"}
	case l.matchesSymbol(l.sym.And):
		return l.consumeSymbol(l.sym.And, tokAnd)
	case l.matchesSymbol(l.sym.Or):
		return l.consumeSymbol(l.sym.Or, tokOr)
	case l.matchesSymbol(l.sym.Not):
		return l.consumeSymbol(l.sym.Not, tokNot)
	case l.matchesSymbol(l.sym.True) && !isIdentRune(l.peekCharAfter(len(l.sym.True))):
		return l.consumeSymbol(l.sym.True, tokTrue)
	case l.matchesSymbol(l.sym.False) && !isIdentRune(l.peekCharAfter(len(l.sym.False))):
		return l.consumeSymbol(l.sym.False, tokFalse)
	case isIdentStart(l.ch):
		return l.readIdent()
	default:
		// Unrecognized character: skip it and lex the next token. No
		// error is reported for the skipped character itself.
		l.readChar()
		return l.next()
	}
}

func (l *lexer) matchesSymbol(sym string) bool {
	if sym == "" {
		return false
	}
	return len(l.input)-l.position >= len(sym) && l.input[l.position:l.position+len(sym)] == sym
}

func (l *lexer) consumeSymbol(sym string, kind tokenKind) token {
	for range sym {
		l.readChar()
	}
	return token{kind: kind, text: sym}
}

func (l *lexer) peekCharAfter(n int) rune {
	pos := l.position + n
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *lexer) readIdent() token {
	start := l.position
	for isIdentRune(l.ch) {
		l.readChar()
	}
	return token{kind: tokIdent, text: l.input[start:l.position]}
}

func (l *lexer) skipSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
