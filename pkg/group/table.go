package group

import (
	"fmt"

	"github.com/matzehuels/dedekind/pkg/errors"
)

// Table is a finite group backed by an explicit multiplication table.
// The zero value is not usable - use NewTable or one of the constructors.
// Table is immutable after construction and safe for concurrent readers.
type Table struct {
	label string
	names []string
	mul   [][]int
	inv   []int
	id    int
}

// NewTable builds a group from an explicit multiplication table and runs the
// full integrity check (closure, identity, inverses, associativity). mul[a][b]
// is the index of the product of elements a and b; names gives one display
// name per element.
//
// Returns an INVALID_TABLE error for shape problems (empty table, ragged rows,
// out-of-range entries, name count mismatch) and an INTEGRITY_VIOLATION error
// when the table fails a group axiom. Intended for hand-authored tables;
// constructor-derived tables skip re-verification.
func NewTable(label string, names []string, mul [][]int) (*Table, error) {
	n := len(mul)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTable, "multiplication table is empty")
	}
	if len(names) != n {
		return nil, errors.New(errors.ErrCodeInvalidTable, "got %d element names for %d elements", len(names), n)
	}
	for a, row := range mul {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidTable, "row %d has %d entries, want %d", a, len(row), n)
		}
		for b, p := range row {
			if p < 0 || p >= n {
				return nil, errors.New(errors.ErrCodeInvalidTable, "entry [%d][%d] = %d out of range", a, b, p)
			}
		}
	}

	t := &Table{label: label, names: cloneNames(names), mul: cloneTable(mul)}
	if err := t.resolveStructure(); err != nil {
		return nil, err
	}
	if err := checkAssociativity(t); err != nil {
		return nil, err
	}
	return t, nil
}

// newDerivedTable builds a table that is correct by construction
// (constructor output). It resolves identity and inverses but skips the
// associativity check; a failure here is a programming error.
func newDerivedTable(label string, names []string, mul [][]int) *Table {
	t := &Table{label: label, names: names, mul: mul}
	if err := t.resolveStructure(); err != nil {
		panic(fmt.Sprintf("group: derived table for %s is not a group: %v", label, err))
	}
	return t
}

// resolveStructure locates the identity element and computes the inverse of
// every element. Returns an INTEGRITY_VIOLATION error when either is missing.
func (t *Table) resolveStructure() error {
	n := len(t.mul)

	t.id = -1
	for e := 0; e < n; e++ {
		isIdentity := true
		for x := 0; x < n; x++ {
			if t.mul[e][x] != x || t.mul[x][e] != x {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			t.id = e
			break
		}
	}
	if t.id == -1 {
		return errors.New(errors.ErrCodeIntegrityViolation, "table has no identity element")
	}

	t.inv = make([]int, n)
	for x := 0; x < n; x++ {
		t.inv[x] = -1
		for y := 0; y < n; y++ {
			if t.mul[x][y] == t.id && t.mul[y][x] == t.id {
				t.inv[x] = y
				break
			}
		}
		if t.inv[x] == -1 {
			return errors.New(errors.ErrCodeIntegrityViolation, "element %s has no inverse", t.names[x])
		}
	}
	return nil
}

// Order returns the number of elements.
func (t *Table) Order() int { return len(t.mul) }

// Identity returns the index of the identity element.
func (t *Table) Identity() int { return t.id }

// Multiply returns the index of the product of elements a and b.
func (t *Table) Multiply(a, b int) int { return t.mul[a][b] }

// Inverse returns the index of the inverse of element a.
func (t *Table) Inverse(a int) int { return t.inv[a] }

// Name returns the display name of element a.
func (t *Table) Name(a int) string { return t.names[a] }

// Label returns the group's display name.
func (t *Table) Label() string { return t.label }

// Rows returns a copy of the multiplication table.
// Row a column b holds the index of the product of a and b.
func (t *Table) Rows() [][]int { return cloneTable(t.mul) }

// Names returns a copy of the element display names, indexed by element.
func (t *Table) Names() []string { return cloneNames(t.names) }

// Restrict builds the induced group on a subset of g's elements.
// The subset must be closed under multiplication and contain the identity;
// otherwise an INVALID_ARGUMENT error is returned. Element indices are
// remapped to 0..len(elems)-1 preserving the given order.
func Restrict(g Group, elems []int, label string) (*Table, error) {
	if len(elems) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "cannot restrict to an empty subset")
	}
	index := make(map[int]int, len(elems))
	for i, x := range elems {
		if x < 0 || x >= g.Order() {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "element %d out of range", x)
		}
		if _, dup := index[x]; dup {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "duplicate element %d in subset", x)
		}
		index[x] = i
	}

	n := len(elems)
	mul := make([][]int, n)
	names := make([]string, n)
	for i, a := range elems {
		names[i] = g.Name(a)
		mul[i] = make([]int, n)
		for j, b := range elems {
			p, ok := index[g.Multiply(a, b)]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidArgument,
					"subset not closed: %s * %s escapes", g.Name(a), g.Name(b))
			}
			mul[i][j] = p
		}
	}
	return newDerivedTable(label, names, mul), nil
}

// checkAssociativity verifies (a*b)*c == a*(b*c) for all triples. O(n^3).
func checkAssociativity(t *Table) error {
	n := len(t.mul)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			ab := t.mul[a][b]
			for c := 0; c < n; c++ {
				if t.mul[ab][c] != t.mul[a][t.mul[b][c]] {
					return errors.New(errors.ErrCodeIntegrityViolation,
						"associativity fails at (%s, %s, %s)", t.names[a], t.names[b], t.names[c])
				}
			}
		}
	}
	return nil
}

func cloneTable(mul [][]int) [][]int {
	out := make([][]int, len(mul))
	for i, row := range mul {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Ensure Table implements Group.
var _ Group = (*Table)(nil)
