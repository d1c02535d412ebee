// Package group implements finite groups as explicit algebraic structures.
//
// A group is modeled as the abstract capability [Group]: a finite element
// set indexed 0..Order()-1 with a total multiplication, an identity, and an
// inverse for every element. All analysis algorithms (subgroup enumeration,
// normality, invariants, classification) work against this interface, so
// alternative backends can be substituted. The package ships one concrete
// backend, [Table], which stores an explicit multiplication table, plus
// constructors for standard groups (cyclic, quaternion, dihedral, direct
// products) and a TOML manifest loader for hand-authored tables.
//
// Groups are immutable once constructed. Constructor-derived tables are
// correct by construction; hand-authored tables (the fixed quaternion table
// and manifest files) are integrity-checked once at construction and never
// re-verified per call.
package group

// Group is the abstract capability required by the analysis algorithms.
// Elements are identified by indices 0..Order()-1. Multiply must be total
// and closed, Identity must be a two-sided identity, and Inverse(x) must
// satisfy Multiply(x, Inverse(x)) == Identity(). Implementations are
// immutable and safe for concurrent readers.
type Group interface {
	// Order returns the number of elements.
	Order() int

	// Identity returns the index of the identity element.
	Identity() int

	// Multiply returns the index of the product of elements a and b.
	Multiply(a, b int) int

	// Inverse returns the index of the inverse of element a.
	Inverse(a int) int

	// Name returns the display name of element a.
	Name(a int) string

	// Label returns a short display name for the group (e.g. "Q8 x C2").
	Label() string
}
