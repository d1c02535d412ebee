package group

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/dedekind/pkg/errors"
)

// Cyclic returns the cyclic group of order n with elements {0,...,n-1} and
// multiplication (a+b) mod n. Element 0 is the identity.
// Returns an INVALID_ORDER error if n is not positive or exceeds the
// supported maximum.
func Cyclic(n int) (*Table, error) {
	if err := errors.ValidateOrder(n); err != nil {
		return nil, err
	}

	names := make([]string, n)
	mul := make([][]int, n)
	for a := 0; a < n; a++ {
		names[a] = strconv.Itoa(a)
		mul[a] = make([]int, n)
		for b := 0; b < n; b++ {
			mul[a][b] = (a + b) % n
		}
	}
	return newDerivedTable(fmt.Sprintf("C%d", n), names, mul), nil
}

// quaternionNames lists the eight quaternion units in table order.
var quaternionNames = []string{"1", "-1", "i", "-i", "j", "-j", "k", "-k"}

// quaternionTable is the fixed multiplication table of Q8 under the standard
// relations i^2 = j^2 = k^2 = -1, ij = k, ji = -k. Row a column b holds the
// index of a*b in quaternionNames order. Hard-coded rather than derived; it
// is verified against the group axioms once per construction.
var quaternionTable = [][]int{
	{0, 1, 2, 3, 4, 5, 6, 7},
	{1, 0, 3, 2, 5, 4, 7, 6},
	{2, 3, 1, 0, 6, 7, 5, 4},
	{3, 2, 0, 1, 7, 6, 4, 5},
	{4, 5, 7, 6, 1, 0, 2, 3},
	{5, 4, 6, 7, 0, 1, 3, 2},
	{6, 7, 4, 5, 3, 2, 1, 0},
	{7, 6, 5, 4, 2, 3, 0, 1},
}

// Quaternion8 returns the quaternion group Q8, the non-abelian group of
// order 8 on {1, -1, i, -i, j, -j, k, -k}. The hand-authored table is run
// through the full integrity check; a failure would be a programming error
// and panics.
func Quaternion8() *Table {
	t, err := NewTable("Q8", quaternionNames, quaternionTable)
	if err != nil {
		panic(fmt.Sprintf("group: quaternion table rejected: %v", err))
	}
	return t
}

// Dihedral returns the dihedral group Dn of order 2n, the symmetries of a
// regular n-gon. Elements 0..n-1 are the rotations r^i, elements n..2n-1 the
// reflections r^i*s, with s*r = r^-1*s. Requires n >= 3 (D3 is isomorphic to
// the symmetric group S3).
func Dihedral(n int) (*Table, error) {
	if n < 3 {
		return nil, errors.New(errors.ErrCodeInvalidOrder, "dihedral group requires n >= 3, got %d", n)
	}
	if err := errors.ValidateOrder(2 * n); err != nil {
		return nil, err
	}

	size := 2 * n
	names := make([]string, size)
	names[0] = "e"
	for i := 1; i < n; i++ {
		names[i] = rotName(i)
	}
	for i := 0; i < n; i++ {
		if i == 0 {
			names[n+i] = "s"
		} else {
			names[n+i] = rotName(i) + "s"
		}
	}

	mul := make([][]int, size)
	for a := 0; a < size; a++ {
		mul[a] = make([]int, size)
		for b := 0; b < size; b++ {
			mul[a][b] = dihedralProduct(n, a, b)
		}
	}
	return newDerivedTable(fmt.Sprintf("D%d", n), names, mul), nil
}

// dihedralProduct multiplies two Dn elements in the rotation/reflection
// index encoding used by Dihedral.
func dihedralProduct(n, a, b int) int {
	ra, sa := a%n, a >= n
	rb, sb := b%n, b >= n

	var rot int
	if sa {
		// (r^ra s)(r^rb ...) = r^(ra-rb) (s ...)
		rot = ((ra-rb)%n + n) % n
	} else {
		rot = (ra + rb) % n
	}
	if sa != sb {
		return n + rot
	}
	return rot
}

func rotName(i int) string {
	if i == 1 {
		return "r"
	}
	return fmt.Sprintf("r%d", i)
}

// Klein4 returns the Klein four-group C2 x C2.
func Klein4() *Table {
	c2a, _ := Cyclic(2)
	c2b, _ := Cyclic(2)
	t, err := DirectProduct(c2a, c2b)
	if err != nil {
		panic(fmt.Sprintf("group: klein four construction failed: %v", err))
	}
	return t
}

// DirectProduct returns the direct product of the given groups: the group on
// the Cartesian product of the element sets with componentwise
// multiplication. The order of the result is the product of the factor
// orders. Returns an INVALID_ARGUMENT error for an empty factor list and an
// INVALID_ORDER error when the product order exceeds the supported maximum.
func DirectProduct(factors ...Group) (*Table, error) {
	if len(factors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "direct product requires at least one factor")
	}

	size := 1
	for _, f := range factors {
		if f.Order() <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "factor %s has no elements", f.Label())
		}
		if size > errors.MaxGroupOrder/f.Order() {
			return nil, errors.New(errors.ErrCodeInvalidOrder,
				"direct product order exceeds maximum %d", errors.MaxGroupOrder)
		}
		size *= f.Order()
	}

	// Mixed-radix element encoding: index = sum of component indices scaled
	// by the orders of the later factors; the identity lands at index 0.
	decode := func(x int) []int {
		parts := make([]int, len(factors))
		for i := len(factors) - 1; i >= 0; i-- {
			parts[i] = x % factors[i].Order()
			x /= factors[i].Order()
		}
		return parts
	}
	encode := func(parts []int) int {
		x := 0
		for i, f := range factors {
			x = x*f.Order() + parts[i]
		}
		return x
	}

	names := make([]string, size)
	mul := make([][]int, size)
	for a := 0; a < size; a++ {
		pa := decode(a)
		names[a] = productName(factors, pa)
		mul[a] = make([]int, size)
		for b := 0; b < size; b++ {
			pb := decode(b)
			pc := make([]int, len(factors))
			for i, f := range factors {
				pc[i] = f.Multiply(pa[i], pb[i])
			}
			mul[a][b] = encode(pc)
		}
	}

	labels := make([]string, len(factors))
	for i, f := range factors {
		labels[i] = f.Label()
	}
	return newDerivedTable(strings.Join(labels, " x "), names, mul), nil
}

func productName(factors []Group, parts []int) string {
	if len(factors) == 1 {
		return factors[0].Name(parts[0])
	}
	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Name(parts[i])
	}
	return "(" + strings.Join(names, ",") + ")"
}
