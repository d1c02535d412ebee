package group

import (
	"sort"
	"strconv"
	"strings"
)

// Subgroup is an immutable subset of a parent group's elements, closed under
// multiplication and inverse and containing the identity. Subgroups are
// produced by the lattice enumerator and consumed as read-only values;
// construction sorts the elements into canonical order.
//
// A Subgroup stores element indices of its parent group, not a standalone
// group. Use [Restrict] to obtain the induced group on the subgroup's
// elements.
type Subgroup struct {
	elems  []int
	member []bool
}

// NewSubgroup builds a subgroup value over the elements of g.
// The input is deduplicated and sorted; closure is not checked here (the
// enumerator only emits closed sets), use [Verify] on the restriction when
// in doubt.
func NewSubgroup(g Group, elems []int) Subgroup {
	member := make([]bool, g.Order())
	for _, x := range elems {
		member[x] = true
	}
	sorted := make([]int, 0, len(elems))
	for x := 0; x < len(member); x++ {
		if member[x] {
			sorted = append(sorted, x)
		}
	}
	return Subgroup{elems: sorted, member: member}
}

// Trivial returns the one-element subgroup containing only the identity.
func Trivial(g Group) Subgroup {
	return NewSubgroup(g, []int{g.Identity()})
}

// Full returns the subgroup containing every element of g.
func Full(g Group) Subgroup {
	elems := make([]int, g.Order())
	for i := range elems {
		elems[i] = i
	}
	return NewSubgroup(g, elems)
}

// Order returns the number of elements in the subgroup.
func (s Subgroup) Order() int { return len(s.elems) }

// Elements returns a copy of the element indices in ascending order.
func (s Subgroup) Elements() []int {
	out := make([]int, len(s.elems))
	copy(out, s.elems)
	return out
}

// Contains reports whether element x belongs to the subgroup.
func (s Subgroup) Contains(x int) bool {
	return x >= 0 && x < len(s.member) && s.member[x]
}

// IsTrivial reports whether the subgroup has exactly one element.
func (s Subgroup) IsTrivial() bool { return len(s.elems) == 1 }

// IsFull reports whether the subgroup contains every parent element.
func (s Subgroup) IsFull() bool { return len(s.elems) == len(s.member) }

// Key returns the canonical identity of the subgroup: its sorted element
// indices joined by commas. Two subgroups of the same parent are equal
// exactly when their keys are equal; the enumerator uses keys for
// deduplication.
func (s Subgroup) Key() string {
	parts := make([]string, len(s.elems))
	for i, x := range s.elems {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two subgroups of the same parent have the same
// element set.
func (s Subgroup) Equal(o Subgroup) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for i, x := range s.elems {
		if o.elems[i] != x {
			return false
		}
	}
	return true
}

// NameList returns the display names of the subgroup's elements in
// canonical order, resolved against the parent group.
func (s Subgroup) NameList(g Group) []string {
	names := make([]string, len(s.elems))
	for i, x := range s.elems {
		names[i] = g.Name(x)
	}
	return names
}

// SortSubgroups orders subgroups by ascending order, breaking ties by
// canonical key. Enumeration results are sorted this way so output is
// deterministic regardless of discovery order.
func SortSubgroups(subs []Subgroup) {
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].Order() != subs[j].Order() {
			return subs[i].Order() < subs[j].Order()
		}
		return subs[i].Key() < subs[j].Key()
	})
}
