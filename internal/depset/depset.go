// Package depset implements the dependency tracker (C1): an immutable
// mapping from atomic proposition to the set of time indices at which it
// may influence a formula's truth.
package depset

import "sort"

// Set maps an atomic proposition name to the time indices that influence
// it. A Set is immutable: every method that would mutate it returns a new
// Set instead. The zero Set (nil map) is valid and represents "no
// dependencies".
//
// Invariant: a key never maps to an empty index set. Callers that would
// produce one must delete the key instead.
type Set struct {
	indices map[string]map[int]struct{}
}

// Empty is the Set with no dependencies, i.e. for True/False.
var Empty = Set{}

// Literal returns the Set for a literal proposition p observed at time 0,
// i.e. {p -> {0}}.
func Literal(p string) Set {
	return Set{indices: map[string]map[int]struct{}{p: {0: {}}}}
}

// APs returns the sorted atomic propositions tracked by s.
func (s Set) APs() []string {
	aps := make([]string, 0, len(s.indices))
	for ap := range s.indices {
		aps = append(aps, ap)
	}
	sort.Strings(aps)
	return aps
}

// Indices returns the sorted time indices tracked for ap, or nil if ap is
// not a key of s.
func (s Set) Indices(ap string) []int {
	idx, ok := s.indices[ap]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(idx))
	for t := range idx {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// Count returns the total number of (AP, index) pairs tracked by s.
func (s Set) Count() int {
	n := 0
	for _, idx := range s.indices {
		n += len(idx)
	}
	return n
}

// Union returns the key-wise union of a and b.
func Union(a, b Set) Set {
	out := map[string]map[int]struct{}{}
	for ap, idx := range a.indices {
		out[ap] = cloneIndices(idx)
	}
	for ap, idx := range b.indices {
		dst, ok := out[ap]
		if !ok {
			out[ap] = cloneIndices(idx)
			continue
		}
		for t := range idx {
			dst[t] = struct{}{}
		}
	}
	return normalize(out)
}

// Shift returns a with every tracked index t replaced by t+k, dropping
// any resulting index greater than horizon. A negative k is never
// produced by the unroller/analyzer in this system but is handled the
// same way (indices below 0 are also dropped).
func Shift(a Set, k int, horizon int) Set {
	out := map[string]map[int]struct{}{}
	for ap, idx := range a.indices {
		shifted := map[int]struct{}{}
		for t := range idx {
			nt := t + k
			if nt < 0 || nt > horizon {
				continue
			}
			shifted[nt] = struct{}{}
		}
		if len(shifted) > 0 {
			out[ap] = shifted
		}
	}
	return normalize(out)
}

// Saturate replaces, for each AP in a, its index set by the contiguous
// range {min(indices), ..., bound}.
func Saturate(a Set, bound int) Set {
	out := map[string]map[int]struct{}{}
	for ap, idx := range a.indices {
		if len(idx) == 0 {
			continue
		}
		min := minKey(idx)
		sat := map[int]struct{}{}
		for t := min; t <= bound; t++ {
			sat[t] = struct{}{}
		}
		if len(sat) > 0 {
			out[ap] = sat
		}
	}
	return normalize(out)
}

// IsDisjoint reports whether a and b share no atomic proposition keys.
// Time indices are not considered: this is the documented contract
// (spec §3/§9) and an explicit Open Question if time-aware disjointness
// is ever needed.
func IsDisjoint(a, b Set) bool {
	small, big := a.indices, b.indices
	if len(big) < len(small) {
		small, big = big, small
	}
	for ap := range small {
		if _, ok := big[ap]; ok {
			return false
		}
	}
	return true
}

// TimeIndependent reports whether every AP in a maps to at most one
// tracked index.
func TimeIndependent(a Set) bool {
	for _, idx := range a.indices {
		if len(idx) > 1 {
			return false
		}
	}
	return true
}

func cloneIndices(idx map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(idx))
	for t := range idx {
		out[t] = struct{}{}
	}
	return out
}

func minKey(idx map[int]struct{}) int {
	first := true
	min := 0
	for t := range idx {
		if first || t < min {
			min = t
			first = false
		}
	}
	return min
}

// normalize drops any key whose index set ended up empty, preserving the
// "a key never maps to an empty index set" invariant, and returns the
// zero-value Set when the result has no keys at all so that Empty
// comparisons behave predictably.
func normalize(m map[string]map[int]struct{}) Set {
	for ap, idx := range m {
		if len(idx) == 0 {
			delete(m, ap)
		}
	}
	if len(m) == 0 {
		return Empty
	}
	return Set{indices: m}
}
