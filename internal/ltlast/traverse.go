package ltlast

// Transformer rewrites a single node whose children have already been
// rewritten. It is the sole extension point for Traverse.
type Transformer func(Node) Node

// Traverse performs a bottom-up rewrite of node: it recurses into
// children first, replaces them with the transformer's output, then
// applies f to the resulting node and returns f's result (spec §4.2).
// Children are replaced in place on node itself, so a node for which f
// returns its argument keeps its identity; this is what lets the
// analyzer's side table be queried with the caller's own nodes.
//
// Traverse is exhaustive over every AST variant, including the derived
// operators (Implies, Iff, Release, WeakUntil) that the simplifier (C3)
// eliminates — analyze.Analyze (C4) is only ever invoked after simplify,
// so it never actually observes those branches, but Traverse itself must
// still route them correctly for simplify's own pass.
func Traverse(node Node, f Transformer) Node {
	switch n := node.(type) {
	case *True, *False, *Literal:
	case *Not:
		n.X = Traverse(n.X, f)
	case *Next:
		n.X = Traverse(n.X, f)
	case *Globally:
		n.X = Traverse(n.X, f)
	case *Eventually:
		n.X = Traverse(n.X, f)
	case *And:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *Or:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *Until:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *WeakUntil:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *Release:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *Implies:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	case *Iff:
		n.L, n.R = Traverse(n.L, f), Traverse(n.R, f)
	default:
		panic("ltlast: Traverse: unhandled node kind")
	}
	return f(node)
}
