package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dedekind/pkg/errors"
)

func TestResolveGroupDescriptor(t *testing.T) {
	tests := []struct {
		arg       string
		wantOrder int
	}{
		{"q8", 8},
		{"d4", 8},
		{"q8xc2", 16},
		{"c12", 12},
	}

	for _, tt := range tests {
		g, err := resolveGroup(tt.arg)
		if err != nil {
			t.Fatalf("resolveGroup(%q): %v", tt.arg, err)
		}
		if g.Order() != tt.wantOrder {
			t.Errorf("resolveGroup(%q) order = %d, want %d", tt.arg, g.Order(), tt.wantOrder)
		}
	}
}

func TestResolveGroupManifest(t *testing.T) {
	manifest := `label = "V4"
elements = ["e", "a", "b", "ab"]
table = [
  ["e", "a", "b", "ab"],
  ["a", "e", "ab", "b"],
  ["b", "ab", "e", "a"],
  ["ab", "b", "a", "e"],
]
`
	path := filepath.Join(t.TempDir(), "v4.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := resolveGroup(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Order() != 4 || g.Label() != "V4" {
		t.Errorf("order = %d label = %q", g.Order(), g.Label())
	}
}

func TestResolveGroupsFailsFast(t *testing.T) {
	_, err := resolveGroups([]string{"q8", "zzz"})
	if err == nil {
		t.Fatal("expected descriptor error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidDescriptor) {
		t.Errorf("code = %v, want INVALID_DESCRIPTOR", errors.GetCode(err))
	}
}
