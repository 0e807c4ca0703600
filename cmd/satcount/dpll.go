package main

// countModels returns the exact number of satisfying assignments of f by
// DPLL search with unit propagation. Exact, not approximate: formulas
// reaching this binary are the product of bounded LTL unrolling (spec
// §4.10) and stay small enough that exhaustive-but-pruned search is the
// right tradeoff.
//
// Pure-literal elimination is deliberately not used here: it preserves
// satisfiability but not model count (fixing a pure literal discards the
// satisfying assignments where it takes its other value but the clause
// is already satisfied by something else), so it cannot appear in a
// #SAT loop.
func countModels(f *cnf) int64 {
	return countRec(f, map[int]int8{})
}

func countRec(f *cnf, assign map[int]int8) int64 {
	assign, ok := propagate(f.clauses, cloneAssign(assign))
	if !ok {
		return 0
	}

	v, found := firstUnassigned(f.nvars, assign)
	if !found {
		return 1
	}

	assign[v] = 1
	nTrue := countRec(f, assign)
	assign[v] = -1
	nFalse := countRec(f, assign)
	return nTrue + nFalse
}

// propagate applies unit propagation to a fixed point. It returns false
// if a clause becomes empty (conflict).
func propagate(clauses [][]int, assign map[int]int8) (map[int]int8, bool) {
	for {
		changed := false

		for _, clause := range clauses {
			sat := false
			unassignedCount := 0
			var lastUnassigned int
			for _, lit := range clause {
				v := abs(lit)
				val, ok := assign[v]
				if !ok {
					unassignedCount++
					lastUnassigned = lit
					continue
				}
				if (lit > 0) == (val == 1) {
					sat = true
					break
				}
			}
			if sat {
				continue
			}
			if unassignedCount == 0 {
				return assign, false
			}
			if unassignedCount == 1 {
				assign[abs(lastUnassigned)] = signOf(lastUnassigned)
				changed = true
			}
		}

		if !changed {
			return assign, true
		}
	}
}

func firstUnassigned(nvars int, assign map[int]int8) (int, bool) {
	for v := 1; v <= nvars; v++ {
		if _, ok := assign[v]; !ok {
			return v, true
		}
	}
	return 0, false
}

func cloneAssign(assign map[int]int8) map[int]int8 {
	clone := make(map[int]int8, len(assign))
	for k, v := range assign {
		clone[k] = v
	}
	return clone
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func signOf(lit int) int8 {
	if lit > 0 {
		return 1
	}
	return -1
}
