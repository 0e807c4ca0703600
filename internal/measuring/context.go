// Package measuring implements the measure evaluator (C7): it recurses
// on an annotated AST, using closed-form combinators on disjoint or
// time-independent subtrees and falling back to unroll+#SAT otherwise.
package measuring

import (
	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/satbridge"
	"github.com/ltlmeasure/measure/internal/unroll"
)

// Context carries the process-wide state spec §9's Design Notes call out
// as globals in the source — the horizon N, the bypass flag, and the
// #SAT cache (inside Bridge) — through measure and unroll, instead of
// package-level mutable state. Simplify needs none of it, and the
// analyzer takes the same horizon as a plain argument.
type Context struct {
	Horizon  int
	Bypass   bool
	Bridge   *satbridge.Bridge
	unroller *unroll.Unroller
}

// NewContext returns a Context for a single measurement run over the
// given horizon.
func NewContext(horizon int, bypass bool, bridge *satbridge.Bridge) *Context {
	return &Context{
		Horizon:  horizon,
		Bypass:   bypass,
		Bridge:   bridge,
		unroller: unroll.New(horizon, config.OutputSymbols),
	}
}

// Clamp restricts v to [0, 1] for reporting only (spec §4.7: "clamped to
// [0, 1] only for reporting, not for intermediate reuse"). A value
// outside [0, 1] by more than floating-point epsilon indicates a bug
// (spec §7) — Clamp does not hide that, it only bounds the display.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
