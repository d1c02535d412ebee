package group

import (
	"testing"

	"github.com/matzehuels/dedekind/pkg/errors"
)

func TestCyclic(t *testing.T) {
	g, err := Cyclic(5)
	if err != nil {
		t.Fatalf("Cyclic(5) error: %v", err)
	}

	if g.Order() != 5 {
		t.Errorf("Order() = %d, want 5", g.Order())
	}
	if g.Identity() != 0 {
		t.Errorf("Identity() = %d, want 0", g.Identity())
	}
	if g.Label() != "C5" {
		t.Errorf("Label() = %q, want C5", g.Label())
	}
	if got := g.Multiply(3, 4); got != 2 {
		t.Errorf("Multiply(3, 4) = %d, want 2", got)
	}
	if got := g.Inverse(2); got != 3 {
		t.Errorf("Inverse(2) = %d, want 3", got)
	}

	if err := Verify(g); err != nil {
		t.Errorf("Verify(C5) failed: %v", err)
	}
}

func TestCyclicInvalidOrder(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := Cyclic(n)
		if err == nil {
			t.Errorf("Cyclic(%d) should fail", n)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidOrder) {
			t.Errorf("Cyclic(%d) code = %v, want INVALID_ORDER", n, errors.GetCode(err))
		}
	}
}

func TestQuaternion8(t *testing.T) {
	g := Quaternion8()

	if g.Order() != 8 {
		t.Fatalf("Order() = %d, want 8", g.Order())
	}
	if err := Verify(g); err != nil {
		t.Fatalf("Verify(Q8) failed: %v", err)
	}

	// Resolve element indices by name for readable assertions.
	idx := make(map[string]int)
	for x := 0; x < g.Order(); x++ {
		idx[g.Name(x)] = x
	}

	tests := []struct {
		a, b, want string
	}{
		{"i", "i", "-1"},
		{"j", "j", "-1"},
		{"k", "k", "-1"},
		{"i", "j", "k"},
		{"j", "i", "-k"},
		{"j", "k", "i"},
		{"k", "j", "-i"},
		{"k", "i", "j"},
		{"i", "k", "-j"},
		{"-1", "-1", "1"},
	}
	for _, tt := range tests {
		got := g.Name(g.Multiply(idx[tt.a], idx[tt.b]))
		if got != tt.want {
			t.Errorf("%s * %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDihedral(t *testing.T) {
	g, err := Dihedral(4)
	if err != nil {
		t.Fatalf("Dihedral(4) error: %v", err)
	}
	if g.Order() != 8 {
		t.Errorf("Order() = %d, want 8", g.Order())
	}
	if err := Verify(g); err != nil {
		t.Errorf("Verify(D4) failed: %v", err)
	}

	// s * r = r^-1 * s = r3s in D4.
	idx := make(map[string]int)
	for x := 0; x < g.Order(); x++ {
		idx[g.Name(x)] = x
	}
	if got := g.Name(g.Multiply(idx["s"], idx["r"])); got != "r3s" {
		t.Errorf("s * r = %s, want r3s", got)
	}
	if got := g.Name(g.Multiply(idx["r"], idx["s"])); got != "rs" {
		t.Errorf("r * s = %s, want rs", got)
	}

	if _, err := Dihedral(2); err == nil {
		t.Error("Dihedral(2) should fail")
	}
}

func TestDirectProductOrder(t *testing.T) {
	c2, _ := Cyclic(2)
	c3, _ := Cyclic(3)
	q8 := Quaternion8()

	tests := []struct {
		name    string
		factors []Group
		want    int
	}{
		{"c2 x c3", []Group{c2, c3}, 6},
		{"q8 x c2", []Group{q8, c2}, 16},
		{"q8 x c3", []Group{q8, c3}, 24},
		{"c2 x c2 x c2", []Group{c2, c2, c2}, 8},
		{"single factor", []Group{c3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DirectProduct(tt.factors...)
			if err != nil {
				t.Fatalf("DirectProduct error: %v", err)
			}
			if g.Order() != tt.want {
				t.Errorf("Order() = %d, want %d", g.Order(), tt.want)
			}
			if err := Verify(g); err != nil {
				t.Errorf("Verify failed: %v", err)
			}
		})
	}
}

func TestDirectProductEmpty(t *testing.T) {
	_, err := DirectProduct()
	if err == nil {
		t.Fatal("DirectProduct() with no factors should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("code = %v, want INVALID_ARGUMENT", errors.GetCode(err))
	}
}

func TestDirectProductComponentwise(t *testing.T) {
	c2, _ := Cyclic(2)
	c3, _ := Cyclic(3)
	g, err := DirectProduct(c2, c3)
	if err != nil {
		t.Fatal(err)
	}

	// Element index encoding is mixed-radix with c3 fastest: (a,b) -> a*3+b.
	// (1,1) * (1,2) = (0,0) = identity.
	if got := g.Multiply(1*3+1, 1*3+2); got != 0 {
		t.Errorf("(1,1)*(1,2) = %d, want 0", got)
	}
	if g.Identity() != 0 {
		t.Errorf("Identity() = %d, want 0", g.Identity())
	}
	if g.Name(0) != "(0,0)" {
		t.Errorf("Name(0) = %q, want (0,0)", g.Name(0))
	}
}

func TestKlein4(t *testing.T) {
	g := Klein4()
	if g.Order() != 4 {
		t.Fatalf("Order() = %d, want 4", g.Order())
	}
	// Every element is its own inverse.
	for x := 0; x < 4; x++ {
		if g.Inverse(x) != x {
			t.Errorf("Inverse(%d) = %d, want %d", x, g.Inverse(x), x)
		}
	}
}

func TestRestrict(t *testing.T) {
	q8 := Quaternion8()

	// {1, -1} is the center of Q8 and closed.
	sub, err := Restrict(q8, []int{0, 1}, "center")
	if err != nil {
		t.Fatalf("Restrict error: %v", err)
	}
	if sub.Order() != 2 {
		t.Errorf("Order() = %d, want 2", sub.Order())
	}
	if err := Verify(sub); err != nil {
		t.Errorf("Verify failed: %v", err)
	}

	// {1, i} is not closed (i*i = -1 escapes).
	if _, err := Restrict(q8, []int{0, 2}, "bad"); err == nil {
		t.Error("Restrict on a non-closed subset should fail")
	}
}
