// Package simplify implements the simplifier (C3): a bottom-up rewrite
// that eliminates the derived operators (Implies, Iff, Release,
// WeakUntil) down to the reduced core of True, False, Literal, Not,
// Next, Globally, Eventually, And, Or, Until.
package simplify

import "github.com/ltlmeasure/measure/internal/ltlast"

// Simplify rewrites root into the reduced core AST described in spec
// §4.3. It is idempotent: simplifying an already-simplified tree returns
// an equivalent tree unchanged in shape.
func Simplify(root ltlast.Node) ltlast.Node {
	return ltlast.Traverse(root, transform)
}

// transform implements the per-node rewrite rules. It assumes its
// argument's children have already been simplified (Traverse's
// contract), except for the Release case, which builds a new WeakUntil
// node out of already-simplified children and must re-apply transform to
// that node itself before returning (spec §4.3: "then re-simplify").
func transform(n ltlast.Node) ltlast.Node {
	switch t := n.(type) {
	case *ltlast.Implies:
		l, r := t.L, t.R
		switch {
		case isFalse(l), isTrue(r):
			return &ltlast.True{}
		case isTrue(l):
			return r
		case isFalse(r):
			return &ltlast.Not{X: l}
		default:
			return &ltlast.Or{L: &ltlast.Not{X: l}, R: r}
		}

	case *ltlast.Iff:
		l, r := t.L, t.R
		return &ltlast.Or{
			L: &ltlast.And{L: l, R: r},
			R: &ltlast.And{L: &ltlast.Not{X: l}, R: &ltlast.Not{X: r}},
		}

	case *ltlast.Release:
		// Release(l, r) = WeakUntil(r, And(l, r)); the nested WeakUntil
		// still needs reducing to the Or/Until/Globally core.
		weakUntil := &ltlast.WeakUntil{L: t.R, R: &ltlast.And{L: t.L, R: t.R}}
		return transform(weakUntil)

	case *ltlast.WeakUntil:
		return &ltlast.Or{
			L: &ltlast.Until{L: t.L, R: t.R},
			R: &ltlast.Globally{X: t.L},
		}

	default:
		return n
	}
}

func isTrue(n ltlast.Node) bool {
	_, ok := n.(*ltlast.True)
	return ok
}

func isFalse(n ltlast.Node) bool {
	_, ok := n.(*ltlast.False)
	return ok
}
