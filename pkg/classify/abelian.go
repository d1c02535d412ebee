package classify

import (
	"github.com/matzehuels/dedekind/pkg/group"
)

// InvariantFactors returns the invariant factor decomposition of an abelian
// group: the unique chain d1 | d2 | ... | dk with every di >= 2 and product
// equal to the group order, such that g is isomorphic to
// C(d1) x C(d2) x ... x C(dk). The trivial group returns nil.
//
// The chain is recovered from the power fingerprint: for each divisor m of
// the order, the number of solutions of x^m = e in C(d1) x ... x C(dk) is
// the product of gcd(di, m), and the fingerprint determines the chain
// uniquely. Behavior is undefined for non-abelian input; callers gate on
// [IsAbelian] first.
func InvariantFactors(g group.Group) []int {
	n := g.Order()
	if n == 1 {
		return nil
	}

	divs := divisors(n)
	counts := make(map[int]int, len(divs))
	for _, m := range divs {
		c := 0
		for x := 0; x < n; x++ {
			if power(g, x, m) == g.Identity() {
				c++
			}
		}
		counts[m] = c
	}

	// Search chains largest factor first; each subsequent factor divides
	// its predecessor. Exactly one chain matches the fingerprint.
	var found []int
	var search func(chain []int, remaining, maxFactor int) bool
	search = func(chain []int, remaining, maxFactor int) bool {
		if remaining == 1 {
			if fingerprintMatches(chain, divs, counts) {
				found = append([]int(nil), chain...)
				return true
			}
			return false
		}
		for i := len(divs) - 1; i >= 0; i-- {
			d := divs[i]
			if d < 2 || remaining%d != 0 || maxFactor%d != 0 {
				continue
			}
			if search(append(chain, d), remaining/d, d) {
				return true
			}
		}
		return false
	}
	search(nil, n, n)

	// The chain was built descending; report ascending d1 | d2 | ... | dk.
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found
}

// fingerprintMatches reports whether the candidate chain produces the
// observed solution counts for every divisor of the order.
func fingerprintMatches(chain []int, divs []int, counts map[int]int) bool {
	for _, m := range divs {
		prod := 1
		for _, d := range chain {
			prod *= gcd(d, m)
		}
		if prod != counts[m] {
			return false
		}
	}
	return true
}

// power returns x^m under the group operation.
func power(g group.Group, x, m int) int {
	p := g.Identity()
	for i := 0; i < m; i++ {
		p = g.Multiply(p, x)
	}
	return p
}

// divisors returns the divisors of n in ascending order.
func divisors(n int) []int {
	var out []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
