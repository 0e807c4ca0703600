package measuring

import "github.com/ltlmeasure/measure/internal/ltlast"

// SymmetricDifference builds the formula (phi ∧ ¬psi) ∨ (¬phi ∧ psi),
// whose measure is the symmetric-difference distance between phi and psi
// (spec §6, the two-expression CLI form). The result still needs
// simplify.Simplify and analyze.Analyze before it can be measured.
func SymmetricDifference(phi, psi ltlast.Node) ltlast.Node {
	return &ltlast.Or{
		L: &ltlast.And{L: phi, R: &ltlast.Not{X: psi}},
		R: &ltlast.And{L: &ltlast.Not{X: phi}, R: psi},
	}
}
