// Package analyze implements the dependency analyzer (C4): a bottom-up
// pass over a simplified AST that populates the annotation side table
// with each node's DepSet and, for binary nodes, a disjointness flag.
package analyze

import (
	"github.com/ltlmeasure/measure/internal/depset"
	"github.com/ltlmeasure/measure/internal/ltlast"
	"github.com/ltlmeasure/measure/internal/measureerr"
)

// Analyze walks root — which must already be in the reduced core form
// produced by simplify.Simplify — and returns the annotation table
// populated per spec §4.4. horizon is the process-wide N for this
// measurement.
func Analyze(horizon int, root ltlast.Node) (ltlast.Annotations, error) {
	ann := ltlast.NewAnnotations()
	var analysisErr error

	transform := func(n ltlast.Node) ltlast.Node {
		if analysisErr != nil {
			return n
		}
		info, err := computeInfo(ann, horizon, n)
		if err != nil {
			analysisErr = err
			return n
		}
		ann.Set(n, info)
		return n
	}

	ltlast.Traverse(root, transform)
	if analysisErr != nil {
		return nil, analysisErr
	}
	return ann, nil
}

func computeInfo(ann ltlast.Annotations, horizon int, n ltlast.Node) (*ltlast.Info, error) {
	switch t := n.(type) {
	case *ltlast.True, *ltlast.False:
		return &ltlast.Info{Deps: depset.Empty}, nil

	case *ltlast.Literal:
		return &ltlast.Info{Deps: depset.Literal(t.Name)}, nil

	case *ltlast.Not:
		return &ltlast.Info{Deps: ann.Get(t.X).Deps}, nil

	case *ltlast.Next:
		return &ltlast.Info{Deps: depset.Shift(ann.Get(t.X).Deps, 1, horizon)}, nil

	case *ltlast.Globally:
		return &ltlast.Info{Deps: depset.Saturate(ann.Get(t.X).Deps, horizon)}, nil

	case *ltlast.Eventually:
		return &ltlast.Info{Deps: depset.Saturate(ann.Get(t.X).Deps, horizon)}, nil

	case *ltlast.And:
		l, r := ann.Get(t.L).Deps, ann.Get(t.R).Deps
		return &ltlast.Info{Deps: depset.Union(l, r), LRDisjoint: depset.IsDisjoint(l, r)}, nil

	case *ltlast.Or:
		l, r := ann.Get(t.L).Deps, ann.Get(t.R).Deps
		return &ltlast.Info{Deps: depset.Union(l, r), LRDisjoint: depset.IsDisjoint(l, r)}, nil

	case *ltlast.Until:
		leftBound := horizon - 1
		if leftBound < 0 {
			leftBound = 0
		}
		l := depset.Saturate(ann.Get(t.L).Deps, leftBound)
		r := depset.Saturate(ann.Get(t.R).Deps, horizon)
		return &ltlast.Info{Deps: depset.Union(l, r), LRDisjoint: depset.IsDisjoint(l, r)}, nil

	default:
		// Implies, Iff, Release, WeakUntil, or any future variant: the
		// analyzer only ever runs after simplify, so reaching one here
		// is always a bug, never user input (spec §7).
		return nil, measureerr.New(measureerr.Structure, "unsupported node kind %T reached the dependency analyzer", n)
	}
}
