// Package unroll implements the bounded-horizon unroller (C5): it
// expands an LTL formula into a propositional expression string over a
// fixed symbol set, folding constants as it goes (spec §4.5).
package unroll

import (
	"strconv"

	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/ltlast"
	"github.com/ltlmeasure/measure/internal/measureerr"
)

// Unroller expands formulas over a fixed horizon and output symbol set.
// The output string is consumed by the propositional CNF converter (P2),
// so Symbols must match what that converter's parser accepts (spec §9).
type Unroller struct {
	Horizon int
	Symbols config.SymbolSet
}

// New returns an Unroller for the given horizon and output symbol set.
func New(horizon int, symbols config.SymbolSet) *Unroller {
	return &Unroller{Horizon: horizon, Symbols: symbols}
}

// Unroll expands node at time n (default 0 at the top level) into a
// well-parenthesized infix propositional expression string.
func (u *Unroller) Unroll(node ltlast.Node, n int) (string, error) {
	switch t := node.(type) {
	case *ltlast.True:
		return u.Symbols.True, nil

	case *ltlast.False:
		return u.Symbols.False, nil

	case *ltlast.Literal:
		if n > u.Horizon {
			return u.Symbols.False, nil
		}
		return t.Name + strconv.Itoa(n), nil

	case *ltlast.Not:
		e, err := u.Unroll(t.X, n)
		if err != nil {
			return "", err
		}
		// No double-negation folding beyond the False case (spec §9,
		// "negation folding" open question): the symmetric "if e is
		// False, return False" branch would be dead code, since the
		// preceding check already handles e == False, so it is not
		// written here.
		if e == u.Symbols.False {
			return u.Symbols.True, nil
		}
		return u.Symbols.Not + e, nil

	case *ltlast.Next:
		return u.Unroll(t.X, n+1)

	case *ltlast.And:
		l, err := u.Unroll(t.L, n)
		if err != nil {
			return "", err
		}
		r, err := u.Unroll(t.R, n)
		if err != nil {
			return "", err
		}
		return u.andFold(l, r), nil

	case *ltlast.Or:
		l, err := u.Unroll(t.L, n)
		if err != nil {
			return "", err
		}
		r, err := u.Unroll(t.R, n)
		if err != nil {
			return "", err
		}
		return u.orFold(l, r), nil

	case *ltlast.Globally:
		return u.unrollGlobally(t.X, n)

	case *ltlast.Eventually:
		return u.unrollEventually(t.X, n)

	case *ltlast.Until:
		// The bounded-horizon expansion collapses the time offset to 0
		// (spec §4.5/§9): r ∨ ⋁_{j=0..N-1} (l ∧ Xl ∧ ... ∧ X^j l ∧ X^{j+1} r),
		// re-unrolled from time 0 regardless of the caller's n. This is a
		// documented quirk, reproduced here rather than fixed, since the
		// evaluator (C7) avoids it entirely whenever the closed-form
		// Until path applies.
		return u.unrollUntil(t.L, t.R)

	default:
		return "", measureerr.New(measureerr.Structure, "unsupported node kind %T reached the unroller", node)
	}
}

// unrollGlobally conjoins unroll(phi, k) for k = n..Horizon, short
// circuiting to False the first time a child folds to False. The seed is
// True so that an empty range (n > Horizon) yields True.
func (u *Unroller) unrollGlobally(phi ltlast.Node, n int) (string, error) {
	acc := u.Symbols.True
	for k := n; k <= u.Horizon; k++ {
		child, err := u.Unroll(phi, k)
		if err != nil {
			return "", err
		}
		acc = u.andFold(acc, child)
		if acc == u.Symbols.False {
			break
		}
	}
	return acc, nil
}

// unrollEventually disjoins unroll(phi, k) for k = n..Horizon, skipping
// any child that folds to False. The seed is False.
func (u *Unroller) unrollEventually(phi ltlast.Node, n int) (string, error) {
	acc := u.Symbols.False
	for k := n; k <= u.Horizon; k++ {
		child, err := u.Unroll(phi, k)
		if err != nil {
			return "", err
		}
		if child == u.Symbols.False {
			continue
		}
		acc = u.orFold(acc, child)
		if acc == u.Symbols.True {
			break
		}
	}
	return acc, nil
}

// unrollUntil builds the bounded expansion iteratively at the string
// level rather than by constructing a deeply-nested Next chain as an AST
// (spec §9, "Recursion depth": Until unrolling nests Next to depth N, so
// large N needs either a bigger stack or this iterative rewrite).
func (u *Unroller) unrollUntil(l, r ltlast.Node) (string, error) {
	rAt0, err := u.Unroll(r, 0)
	if err != nil {
		return "", err
	}
	acc := rAt0

	prefix := u.Symbols.True // empty conjunction of l@0..l@(j-1)
	for j := 0; j <= u.Horizon-1; j++ {
		lj, err := u.Unroll(l, j)
		if err != nil {
			return "", err
		}
		prefix = u.andFold(prefix, lj)

		rNext, err := u.Unroll(r, j+1)
		if err != nil {
			return "", err
		}
		chain := u.andFold(prefix, rNext)
		acc = u.orFold(acc, chain)
		if acc == u.Symbols.True {
			break
		}
	}
	return acc, nil
}

func (u *Unroller) andFold(a, b string) string {
	if a == u.Symbols.False || b == u.Symbols.False {
		return u.Symbols.False
	}
	if a == u.Symbols.True {
		return b
	}
	if b == u.Symbols.True {
		return a
	}
	return "(" + a + u.Symbols.And + b + ")"
}

func (u *Unroller) orFold(a, b string) string {
	if a == u.Symbols.True || b == u.Symbols.True {
		return u.Symbols.True
	}
	if a == u.Symbols.False {
		return b
	}
	if b == u.Symbols.False {
		return a
	}
	return "(" + a + u.Symbols.Or + b + ")"
}
