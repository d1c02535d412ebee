package group

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dedekind/pkg/errors"
)

// FromDescriptor constructs a group from a compact textual descriptor.
//
// The grammar is product terms joined by "x", where each term is one of:
//
//	c<N>   cyclic group of order N
//	d<N>   dihedral group of order 2N (N >= 3)
//	q8     quaternion group
//	klein  Klein four-group C2 x C2
//
// Examples: "c5", "q8", "q8xc2", "d4xc3". A single term yields that group
// directly; multiple terms yield their direct product. Descriptors are
// case-insensitive. Manifest file paths are not part of this grammar; the
// CLI resolves those before calling the constructors.
func FromDescriptor(descriptor string) (*Table, error) {
	s := strings.ToLower(strings.TrimSpace(descriptor))
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidDescriptor, "descriptor cannot be empty")
	}

	terms := strings.Split(s, "x")
	factors := make([]Group, 0, len(terms))
	for _, term := range terms {
		g, err := fromTerm(term)
		if err != nil {
			return nil, err
		}
		factors = append(factors, g)
	}
	if len(factors) == 1 {
		return factors[0].(*Table), nil
	}
	return DirectProduct(factors...)
}

func fromTerm(term string) (*Table, error) {
	if err := errors.ValidateDescriptorTerm(term); err != nil {
		return nil, err
	}
	switch {
	case term == "q8":
		return Quaternion8(), nil
	case term == "klein":
		return Klein4(), nil
	case term[0] == 'c':
		n, err := strconv.Atoi(term[1:])
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDescriptor, "bad cyclic order in %q", term)
		}
		return Cyclic(n)
	case term[0] == 'd':
		n, err := strconv.Atoi(term[1:])
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDescriptor, "bad dihedral index in %q", term)
		}
		return Dihedral(n)
	}
	return nil, errors.New(errors.ErrCodeInvalidDescriptor, "unknown group descriptor: %q", term)
}
