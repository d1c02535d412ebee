package classify

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/invariant"
)

// Signature is a cheap invariant tuple used to prune the catalog before the
// full isomorphism search. Equal signatures do not imply isomorphism (Q8 and
// D4 collide), but distinct signatures rule it out.
type Signature struct {
	Order           int
	Abelian         bool
	CenterOrder     int
	Exponent        int
	CommutatorOrder int
}

// SignatureOf computes the pruning signature of g.
func SignatureOf(g group.Group) Signature {
	return Signature{
		Order:           g.Order(),
		Abelian:         IsAbelian(g),
		CenterOrder:     invariant.Center(g).Order(),
		Exponent:        invariant.Exponent(g),
		CommutatorOrder: invariant.CommutatorSubgroup(g).Order(),
	}
}

// CatalogEntry names a well-known non-abelian group that Describe can
// recognize by isomorphism. Descriptor rebuilds the group via
// group.FromDescriptor.
type CatalogEntry struct {
	Descriptor string
	Name       string
}

var knownGroups = []CatalogEntry{
	{"q8", "quaternion group Q8"},
	{"d3", "dihedral group D3"},
	{"d4", "dihedral group D4"},
	{"d5", "dihedral group D5"},
	{"d6", "dihedral group D6"},
	{"q8xc2", "direct product Q8 x C2"},
	{"q8xc3", "direct product Q8 x C3"},
}

// Catalog returns the recognized non-abelian groups.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(knownGroups))
	copy(out, knownGroups)
	return out
}

// Describe returns a human-readable structure description of g.
//
// The trivial group and abelian groups are described exactly from the
// invariant factor decomposition. Non-abelian groups are matched against
// the catalog by signature and confirmed with an isomorphism search; groups
// outside the catalog fall back to a summary built from the derived and
// lower central series.
func Describe(g group.Group) string {
	if g.Order() == 1 {
		return "trivial group"
	}

	if IsAbelian(g) {
		factors := InvariantFactors(g)
		if len(factors) == 1 {
			return fmt.Sprintf("cyclic group C%d", factors[0])
		}
		parts := make([]string, len(factors))
		for i, d := range factors {
			parts[i] = fmt.Sprintf("C%d", d)
		}
		return "abelian group " + strings.Join(parts, " x ")
	}

	sig := SignatureOf(g)
	for _, entry := range knownGroups {
		cand, err := group.FromDescriptor(entry.Descriptor)
		if err != nil || cand.Order() != sig.Order {
			continue
		}
		if SignatureOf(cand) != sig {
			continue
		}
		if Isomorphic(g, cand) {
			return entry.Name
		}
	}

	dl, solvable := invariant.DerivedLength(g)
	nc, nilpotent := invariant.NilpotencyClass(g)
	series := "not solvable"
	if solvable {
		series = fmt.Sprintf("derived length %d", dl)
	}
	central := "not nilpotent"
	if nilpotent {
		central = fmt.Sprintf("nilpotency class %d", nc)
	}
	return fmt.Sprintf("non-abelian group of order %d (%s, %s)", g.Order(), series, central)
}
