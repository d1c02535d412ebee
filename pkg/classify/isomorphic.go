package classify

import (
	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/invariant"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

// Isomorphic reports whether g and h are isomorphic. It prunes on order and
// on the element-order profile, then runs a backtracking search over images
// of a small generating set of g: each candidate assignment is extended to a
// full map by closing under products, rejecting on the first inconsistency.
//
// The search is exponential in the worst case but the generating sets of the
// table-backed groups handled here are tiny (two or three generators), so in
// practice it terminates quickly for every order the engine accepts.
func Isomorphic(g, h group.Group) bool {
	if g.Order() != h.Order() {
		return false
	}
	if g.Order() == 1 {
		return true
	}

	ordG := elementOrders(g)
	ordH := elementOrders(h)
	if !sameProfile(ordG, ordH) {
		return false
	}

	gens := generatingSet(g)
	images := make([]int, len(gens))

	var try func(i int) bool
	try = func(i int) bool {
		if i == len(gens) {
			return true
		}
		for y := 0; y < h.Order(); y++ {
			if ordH[y] != ordG[gens[i]] {
				continue
			}
			images[i] = y
			// Reject partial assignments early: the images must define a
			// consistent injective map on the subgroup the prefix generates.
			if !extendsToMap(g, h, gens[:i+1], images[:i+1]) {
				continue
			}
			if try(i + 1) {
				return true
			}
		}
		return false
	}
	return try(0)
}

// extendsToMap reports whether mapping gens[i] -> images[i] extends to an
// injective homomorphism on the subgroup generated by gens. When gens
// generates the whole group this is exactly an isomorphism check.
func extendsToMap(g, h group.Group, gens, images []int) bool {
	toH := make([]int, g.Order())
	for i := range toH {
		toH[i] = -1
	}
	used := make([]bool, h.Order())
	var queue []int

	assign := func(x, y int) bool {
		if toH[x] != -1 {
			return toH[x] == y
		}
		if used[y] {
			return false
		}
		toH[x] = y
		used[y] = true
		queue = append(queue, x)
		return true
	}

	if !assign(g.Identity(), h.Identity()) {
		return false
	}
	for i, gen := range gens {
		if !assign(gen, images[i]) {
			return false
		}
	}

	// Close the domain under products. Every pair of mapped elements forces
	// the image of their product in both orders.
	var known []int
	for head := 0; head < len(queue); head++ {
		x := queue[head]
		if !assign(g.Multiply(x, x), h.Multiply(toH[x], toH[x])) {
			return false
		}
		for _, y := range known {
			if !assign(g.Multiply(x, y), h.Multiply(toH[x], toH[y])) {
				return false
			}
			if !assign(g.Multiply(y, x), h.Multiply(toH[y], toH[x])) {
				return false
			}
		}
		known = append(known, x)
	}
	return true
}

// generatingSet returns a small generating set of g, greedily picking the
// highest-order element outside the subgroup generated so far.
func generatingSet(g group.Group) []int {
	var gens []int
	cur := lattice.GeneratedBy(g, nil)
	for cur.Order() < g.Order() {
		best, bestOrder := -1, 0
		for x := 0; x < g.Order(); x++ {
			if cur.Contains(x) {
				continue
			}
			if k := invariant.ElementOrder(g, x); k > bestOrder {
				best, bestOrder = x, k
			}
		}
		gens = append(gens, best)
		cur = lattice.GeneratedBy(g, gens)
	}
	return gens
}

// elementOrders returns the order of every element, indexed by element.
func elementOrders(g group.Group) []int {
	out := make([]int, g.Order())
	for x := range out {
		out[x] = invariant.ElementOrder(g, x)
	}
	return out
}

// sameProfile reports whether two groups have the same number of elements
// of each order.
func sameProfile(a, b []int) bool {
	counts := make(map[int]int)
	for _, k := range a {
		counts[k]++
	}
	for _, k := range b {
		counts[k]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
