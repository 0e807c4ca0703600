package ltlast

import "github.com/ltlmeasure/measure/internal/depset"

// Info is the annotation record the dependency analyzer (C4) attaches to
// every node: its DepSet, and — for binary nodes — whether its two
// children are disjoint.
type Info struct {
	Deps       depset.Set
	LRDisjoint bool
}

// Annotations is a side table keyed by node identity (spec §9: "the
// side-table approach avoids mutation of shared structure"). It is
// invalidated by any structural change to the tree it was built from —
// callers must re-run the analyzer after simplify rewrites nodes.
type Annotations map[Node]*Info

// NewAnnotations returns an empty annotation table.
func NewAnnotations() Annotations {
	return make(Annotations)
}

// Set records info for node.
func (a Annotations) Set(node Node, info *Info) {
	a[node] = info
}

// Get returns the recorded info for node, or panics if node was never
// annotated — analyze.Analyze is expected to be exhaustive over the tree it
// runs on, so a missing entry is always a caller bug (an evaluator
// walking a node the analyzer never visited).
func (a Annotations) Get(node Node) *Info {
	info, ok := a[node]
	if !ok {
		panic("ltlast: Annotations.Get: node was never annotated")
	}
	return info
}
