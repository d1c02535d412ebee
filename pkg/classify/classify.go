// Package classify decides the structural class of a finite group: abelian,
// Dedekind (every subgroup normal), Hamiltonian (Dedekind but not abelian),
// and a human-readable structure description backed by invariant factors for
// abelian groups and an isomorphism search against a catalog of known
// non-abelian groups.
package classify

import (
	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

// IsAbelian reports whether every pair of elements commutes.
func IsAbelian(g group.Group) bool {
	for a := 0; a < g.Order(); a++ {
		for b := a + 1; b < g.Order(); b++ {
			if g.Multiply(a, b) != g.Multiply(b, a) {
				return false
			}
		}
	}
	return true
}

// IsDedekind reports whether every subgroup in subs is normal in g. Callers
// pass the full lattice from lattice.Enumerate; there is no abelian shortcut
// here, the normality scan short-circuits on the first counterexample.
func IsDedekind(g group.Group, subs []group.Subgroup) bool {
	for _, h := range subs {
		if !lattice.IsNormal(g, h) {
			return false
		}
	}
	return true
}

// IsHamiltonian reports whether g is Dedekind but not abelian. The smallest
// Hamiltonian group is Q8; every Hamiltonian group contains a copy of it.
func IsHamiltonian(g group.Group, subs []group.Subgroup) bool {
	return !IsAbelian(g) && IsDedekind(g, subs)
}
