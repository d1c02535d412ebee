package classify

import (
	"testing"

	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

func mustGroup(t *testing.T, descriptor string) *group.Table {
	t.Helper()
	g, err := group.FromDescriptor(descriptor)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustLattice(t *testing.T, g group.Group) []group.Subgroup {
	t.Helper()
	subs, err := lattice.Enumerate(g, lattice.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return subs
}

func TestIsAbelian(t *testing.T) {
	tests := []struct {
		descriptor string
		want       bool
	}{
		{"c1", true},
		{"c7", true},
		{"klein", true},
		{"c2xc3xc5", true},
		{"q8", false},
		{"d3", false},
		{"q8xc2", false},
	}

	for _, tt := range tests {
		g := mustGroup(t, tt.descriptor)
		if got := IsAbelian(g); got != tt.want {
			t.Errorf("IsAbelian(%s) = %v, want %v", tt.descriptor, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		descriptor      string
		wantDedekind    bool
		wantHamiltonian bool
	}{
		{"c5", true, false},     // abelian, hence Dedekind, never Hamiltonian
		{"klein", true, false},
		{"q8", true, true},      // the smallest Hamiltonian group
		{"q8xc2", true, true},   // Hamiltonian of order 16
		{"q8xc3", true, true},   // Hamiltonian of order 24
		{"d3", false, false},    // reflections generate non-normal subgroups
		{"d4", false, false},
		{"d6", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			g := mustGroup(t, tt.descriptor)
			subs := mustLattice(t, g)

			if got := IsDedekind(g, subs); got != tt.wantDedekind {
				t.Errorf("IsDedekind = %v, want %v", got, tt.wantDedekind)
			}
			if got := IsHamiltonian(g, subs); got != tt.wantHamiltonian {
				t.Errorf("IsHamiltonian = %v, want %v", got, tt.wantHamiltonian)
			}
		})
	}
}

func TestAbelianImpliesDedekind(t *testing.T) {
	for _, descriptor := range []string{"c1", "c2", "c12", "klein", "c2xc4", "c3xc9"} {
		g := mustGroup(t, descriptor)
		subs := mustLattice(t, g)
		if !IsDedekind(g, subs) {
			t.Errorf("%s: abelian group should be Dedekind", descriptor)
		}
		if IsHamiltonian(g, subs) {
			t.Errorf("%s: abelian group should not be Hamiltonian", descriptor)
		}
	}
}

func TestInvariantFactors(t *testing.T) {
	tests := []struct {
		descriptor string
		want       []int
	}{
		{"c1", nil},
		{"c6", []int{6}},
		{"c2xc3", []int{6}},    // isomorphic to C6, same decomposition
		{"klein", []int{2, 2}},
		{"c2xc4", []int{2, 4}},
		{"c2xc2xc4", []int{2, 2, 4}},
		{"c2xc3xc4", []int{2, 12}},
		{"c6xc4", []int{2, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			g := mustGroup(t, tt.descriptor)
			got := InvariantFactors(g)
			if len(got) != len(tt.want) {
				t.Fatalf("InvariantFactors = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("InvariantFactors = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
