// Package invariant derives structural invariants of finite groups: center,
// commutator subgroup, derived series, nilpotency class, exponent, and the
// index of the center.
//
// The 0-sentinel of the flat report format conflates "not solvable" / "not
// nilpotent" with "trivially zero", so the series functions return a tagged
// pair (value, ok): DerivedLength reports (0, true) for the trivial group
// and (0, false) for a non-solvable group. Callers flattening into a report
// record store the bare value.
package invariant

import (
	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

// Center returns the subgroup of elements that commute with every element
// of g. The center is always normal and abelian.
func Center(g group.Group) group.Subgroup {
	var elems []int
	for x := 0; x < g.Order(); x++ {
		central := true
		for y := 0; y < g.Order(); y++ {
			if g.Multiply(x, y) != g.Multiply(y, x) {
				central = false
				break
			}
		}
		if central {
			elems = append(elems, x)
		}
	}
	return group.NewSubgroup(g, elems)
}

// Commutator returns the commutator [a, b] = a*b*a^-1*b^-1.
func Commutator(g group.Group, a, b int) int {
	return g.Multiply(g.Multiply(g.Multiply(a, b), g.Inverse(a)), g.Inverse(b))
}

// CommutatorSubgroup returns the derived subgroup of g: the subgroup
// generated by all commutators [a, b] over pairs of group elements.
// It is always normal.
func CommutatorSubgroup(g group.Group) group.Subgroup {
	return derivedOf(g, group.Full(g))
}

// derivedOf returns the subgroup generated by commutators of pairs drawn
// from h.
func derivedOf(g group.Group, h group.Subgroup) group.Subgroup {
	elems := h.Elements()
	gens := make([]int, 0, len(elems))
	seen := make([]bool, g.Order())
	for _, a := range elems {
		for _, b := range elems {
			c := Commutator(g, a, b)
			if !seen[c] {
				seen[c] = true
				gens = append(gens, c)
			}
		}
	}
	return lattice.GeneratedBy(g, gens)
}

// DerivedSeries returns the series G = D0 >= D1 >= ... where each term is
// the commutator subgroup of the previous, ending at the first repeated
// term (the fixed point). The last entry is trivial exactly when g is
// solvable.
func DerivedSeries(g group.Group) []group.Subgroup {
	series := []group.Subgroup{group.Full(g)}
	for {
		next := derivedOf(g, series[len(series)-1])
		if next.Equal(series[len(series)-1]) {
			return series
		}
		series = append(series, next)
	}
}

// DerivedLength returns the number of strict steps in the derived series
// before it stabilizes at the trivial subgroup, and whether g is solvable.
// The trivial group reports (0, true); a series stabilizing at a
// non-trivial subgroup reports (0, false).
func DerivedLength(g group.Group) (int, bool) {
	series := DerivedSeries(g)
	if !series[len(series)-1].IsTrivial() {
		return 0, false
	}
	return len(series) - 1, true
}

// LowerCentralSeries returns the series G = L1 >= L2 >= ... where
// L(i+1) = [G, Li], ending at the first repeated term. The last entry is
// trivial exactly when g is nilpotent.
func LowerCentralSeries(g group.Group) []group.Subgroup {
	series := []group.Subgroup{group.Full(g)}
	for {
		cur := series[len(series)-1]
		elems := cur.Elements()
		var gens []int
		seen := make([]bool, g.Order())
		for a := 0; a < g.Order(); a++ {
			for _, x := range elems {
				c := Commutator(g, a, x)
				if !seen[c] {
					seen[c] = true
					gens = append(gens, c)
				}
			}
		}
		next := lattice.GeneratedBy(g, gens)
		if next.Equal(cur) {
			return series
		}
		series = append(series, next)
	}
}

// NilpotencyClass returns the length of the lower central series down to
// the trivial subgroup, and whether g is nilpotent. The trivial group
// reports (0, true); abelian groups report (1, true) unless trivial; a
// series stabilizing above the trivial subgroup reports (0, false).
func NilpotencyClass(g group.Group) (int, bool) {
	series := LowerCentralSeries(g)
	if !series[len(series)-1].IsTrivial() {
		return 0, false
	}
	return len(series) - 1, true
}

// ElementOrder returns the least k > 0 with x^k equal to the identity.
func ElementOrder(g group.Group, x int) int {
	k := 1
	p := x
	for p != g.Identity() {
		p = g.Multiply(p, x)
		k++
	}
	return k
}

// Exponent returns the least common multiple of the orders of all elements
// of g. For a finite group this always exists and divides the group order.
func Exponent(g group.Group) int {
	exp := 1
	for x := 0; x < g.Order(); x++ {
		exp = lcm(exp, ElementOrder(g, x))
	}
	return exp
}

// CenterIndex returns [G : Z(G)], the index of the center. Lagrange
// guarantees the division is exact.
func CenterIndex(g group.Group) int {
	return g.Order() / Center(g).Order()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
