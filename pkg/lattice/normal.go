package lattice

import (
	"github.com/matzehuels/dedekind/pkg/group"
)

// IsNormal reports whether h is a normal subgroup of g: whether g*h*g^-1
// stays inside h for every group element. Returns false on the first
// counterexample. O(|G|*|H|) conjugations per check.
func IsNormal(g group.Group, h group.Subgroup) bool {
	elems := h.Elements()
	for a := 0; a < g.Order(); a++ {
		inv := g.Inverse(a)
		for _, x := range elems {
			if !h.Contains(g.Multiply(g.Multiply(a, x), inv)) {
				return false
			}
		}
	}
	return true
}

// NormalCount returns how many of subs are normal in g.
func NormalCount(g group.Group, subs []group.Subgroup) int {
	count := 0
	for _, h := range subs {
		if IsNormal(g, h) {
			count++
		}
	}
	return count
}

// Normals filters subs down to the normal subgroups of g,
// preserving order.
func Normals(g group.Group, subs []group.Subgroup) []group.Subgroup {
	var out []group.Subgroup
	for _, h := range subs {
		if IsNormal(g, h) {
			out = append(out, h)
		}
	}
	return out
}
