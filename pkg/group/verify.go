package group

import (
	"github.com/matzehuels/dedekind/pkg/errors"
)

// Verify runs the full integrity check against any Group backend: closure of
// the operation over the element range, two-sided identity, two-sided
// inverses, and associativity. Returns an INTEGRITY_VIOLATION error naming
// the first failing axiom, or nil.
//
// Verification is O(n^3) in the group order and is meant to run once per
// construction (hand-authored tables) or on demand (--verify), never on the
// hot path of the analysis algorithms.
func Verify(g Group) error {
	n := g.Order()
	if n <= 0 {
		return errors.New(errors.ErrCodeIntegrityViolation, "group has no elements")
	}

	e := g.Identity()
	if e < 0 || e >= n {
		return errors.New(errors.ErrCodeIntegrityViolation, "identity index %d out of range", e)
	}

	// Closure: every product must stay within the element range.
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if p := g.Multiply(a, b); p < 0 || p >= n {
				return errors.New(errors.ErrCodeIntegrityViolation,
					"product %s * %s out of range", g.Name(a), g.Name(b))
			}
		}
	}

	// Two-sided identity.
	for x := 0; x < n; x++ {
		if g.Multiply(e, x) != x || g.Multiply(x, e) != x {
			return errors.New(errors.ErrCodeIntegrityViolation,
				"%s is not fixed by the identity", g.Name(x))
		}
	}

	// Two-sided inverses.
	for x := 0; x < n; x++ {
		y := g.Inverse(x)
		if y < 0 || y >= n {
			return errors.New(errors.ErrCodeIntegrityViolation,
				"inverse of %s out of range", g.Name(x))
		}
		if g.Multiply(x, y) != e || g.Multiply(y, x) != e {
			return errors.New(errors.ErrCodeIntegrityViolation,
				"%s and %s are not mutual inverses", g.Name(x), g.Name(y))
		}
	}

	// Associativity.
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			ab := g.Multiply(a, b)
			for c := 0; c < n; c++ {
				if g.Multiply(ab, c) != g.Multiply(a, g.Multiply(b, c)) {
					return errors.New(errors.ErrCodeIntegrityViolation,
						"associativity fails at (%s, %s, %s)", g.Name(a), g.Name(b), g.Name(c))
				}
			}
		}
	}

	return nil
}
