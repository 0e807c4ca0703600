package measuring

import (
	"github.com/ltlmeasure/measure/internal/depset"
	"github.com/ltlmeasure/measure/internal/ltlast"
	"github.com/ltlmeasure/measure/internal/measureerr"
)

// Measure returns the probability that node holds at time n, under ctx
// (spec §4.7). ann must be the annotation table produced by analyze.
// Analyze over the exact same (already-simplified) tree node belongs to.
func Measure(ctx *Context, ann ltlast.Annotations, node ltlast.Node, n int) (float64, error) {
	switch t := node.(type) {
	case *ltlast.True:
		return 1, nil

	case *ltlast.False:
		return 0, nil

	case *ltlast.Literal:
		if n <= ctx.Horizon {
			return 0.5, nil
		}
		return 0, nil

	case *ltlast.Not:
		v, err := Measure(ctx, ann, t.X, n)
		if err != nil {
			return 0, err
		}
		return 1 - v, nil

	case *ltlast.Next:
		return Measure(ctx, ann, t.X, n+1)

	case *ltlast.And:
		info := ann.Get(node)
		if info.LRDisjoint && ctx.Bypass {
			l, err := Measure(ctx, ann, t.L, n)
			if err != nil {
				return 0, err
			}
			r, err := Measure(ctx, ann, t.R, n)
			if err != nil {
				return 0, err
			}
			return l * r, nil
		}
		return ctx.satMeasure(node, n)

	case *ltlast.Or:
		info := ann.Get(node)
		if info.LRDisjoint && ctx.Bypass {
			l, err := Measure(ctx, ann, t.L, n)
			if err != nil {
				return 0, err
			}
			r, err := Measure(ctx, ann, t.R, n)
			if err != nil {
				return 0, err
			}
			return 1 - (1-l)*(1-r), nil
		}
		return ctx.satMeasure(node, n)

	case *ltlast.Until:
		info := ann.Get(node)
		if info.LRDisjoint && depset.TimeIndependent(info.Deps) && ctx.Bypass {
			a, err := Measure(ctx, ann, t.L, 0)
			if err != nil {
				return 0, err
			}
			b, err := Measure(ctx, ann, t.R, 0)
			if err != nil {
				return 0, err
			}
			acc := b
			for i := 0; i < ctx.Horizon+1; i++ {
				acc = 1 - (1-acc*a)*(1-b)
			}
			return acc, nil
		}
		return ctx.satMeasure(node, n)

	case *ltlast.Globally:
		childDeps := ann.Get(t.X).Deps
		if depset.TimeIndependent(childDeps) {
			product := 1.0
			for k := 0; k <= ctx.Horizon; k++ {
				v, err := Measure(ctx, ann, t.X, n+k)
				if err != nil {
					return 0, err
				}
				product *= v
			}
			return product, nil
		}
		return ctx.satMeasure(node, n)

	case *ltlast.Eventually:
		childDeps := ann.Get(t.X).Deps
		if depset.TimeIndependent(childDeps) {
			product := 1.0
			for k := 0; k <= ctx.Horizon; k++ {
				v, err := Measure(ctx, ann, t.X, n+k)
				if err != nil {
					return 0, err
				}
				product *= 1 - v
			}
			return 1 - product, nil
		}
		return ctx.satMeasure(node, n)

	default:
		return 0, measureerr.New(measureerr.Structure, "unsupported node kind %T reached the measure evaluator", node)
	}
}

// satMeasure unrolls node at time n and delegates to the #SAT bridge —
// the fallback path for every non-trivial node the closed-form rules
// above cannot resolve analytically.
func (ctx *Context) satMeasure(node ltlast.Node, n int) (float64, error) {
	expr, err := ctx.unroller.Unroll(node, n)
	if err != nil {
		return 0, err
	}
	return ctx.Bridge.Measure(expr)
}
