// Package lattice computes the complete subgroup lattice of a finite group
// and answers normality questions about its members.
//
// Enumeration grows the lattice from the trivial subgroup by fixed-point
// iteration: every known subgroup is extended by every outside element, the
// generated closure is taken, and newly discovered subgroups are queued
// until a full pass adds nothing. The lattice of a finite group is finite,
// so termination is guaranteed; a configurable ceiling converts pathological
// inputs into a RESOURCE_EXCEEDED error instead of unbounded work.
//
// The package also renders the lattice as a Hasse diagram (DOT, SVG, PNG)
// with normal subgroups highlighted.
package lattice

import (
	"github.com/matzehuels/dedekind/pkg/errors"
	"github.com/matzehuels/dedekind/pkg/group"
)

// DefaultMaxSubgroups is the default enumeration ceiling. Groups in this
// tool's design envelope (order up to a few hundred) stay well below it;
// hitting the ceiling means the input is outside what brute-force
// enumeration is meant for.
const DefaultMaxSubgroups = 512

// Options configures subgroup enumeration.
type Options struct {
	// MaxSubgroups aborts enumeration with RESOURCE_EXCEEDED when more
	// distinct subgroups than this are discovered. Zero means
	// DefaultMaxSubgroups.
	MaxSubgroups int
}

func (o Options) maxSubgroups() int {
	if o.MaxSubgroups <= 0 {
		return DefaultMaxSubgroups
	}
	return o.MaxSubgroups
}

// Enumerate computes the complete subgroup lattice of g: every subgroup
// appears exactly once, sorted by ascending order with canonical-key
// tie-breaks so the result is independent of discovery order.
//
// Returns a RESOURCE_EXCEEDED error when the subgroup ceiling is hit.
func Enumerate(g group.Group, opts Options) ([]group.Subgroup, error) {
	ceiling := opts.maxSubgroups()

	trivial := group.Trivial(g)
	seen := map[string]bool{trivial.Key(): true}
	subs := []group.Subgroup{trivial}

	// Worklist pass: extending H by one outside element and closing yields
	// every subgroup eventually, because any K > H is reached from H via
	// some x in K \ H. Newly appended subgroups are processed in turn.
	for i := 0; i < len(subs); i++ {
		h := subs[i]
		for x := 0; x < g.Order(); x++ {
			if h.Contains(x) {
				continue
			}
			k := GeneratedBy(g, append(h.Elements(), x))
			if seen[k.Key()] {
				continue
			}
			seen[k.Key()] = true
			subs = append(subs, k)
			if len(subs) > ceiling {
				return nil, errors.New(errors.ErrCodeResourceExceeded,
					"subgroup enumeration exceeded ceiling of %d for %s", ceiling, g.Label())
			}
		}
	}

	group.SortSubgroups(subs)
	return subs, nil
}

// GeneratedBy returns the subgroup of g generated by the given elements:
// the closure of gens (plus the identity) under multiplication and inverse,
// iterated to a fixed point.
func GeneratedBy(g group.Group, gens []int) group.Subgroup {
	member := make([]bool, g.Order())
	var elems []int

	add := func(x int) {
		if !member[x] {
			member[x] = true
			elems = append(elems, x)
		}
	}

	add(g.Identity())
	for _, x := range gens {
		add(x)
	}

	// Process each element once against everything known so far; products
	// with later arrivals are covered when those arrivals are processed.
	for i := 0; i < len(elems); i++ {
		x := elems[i]
		add(g.Inverse(x))
		for j := 0; j <= i; j++ {
			y := elems[j]
			add(g.Multiply(x, y))
			add(g.Multiply(y, x))
		}
	}

	return group.NewSubgroup(g, elems)
}
