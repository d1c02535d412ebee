package group

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dedekind/pkg/errors"
)

const klein4Manifest = `
label = "V4"
elements = ["e", "a", "b", "c"]
table = [
    ["e", "a", "b", "c"],
    ["a", "e", "c", "b"],
    ["b", "c", "e", "a"],
    ["c", "b", "a", "e"],
]
`

func TestParseManifest(t *testing.T) {
	g, err := ParseManifest([]byte(klein4Manifest), "fallback")
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}

	if g.Label() != "V4" {
		t.Errorf("Label() = %q, want V4", g.Label())
	}
	if g.Order() != 4 {
		t.Errorf("Order() = %d, want 4", g.Order())
	}
	if g.Identity() != 0 {
		t.Errorf("Identity() = %d, want 0", g.Identity())
	}
	if name := g.Name(g.Multiply(1, 2)); name != "c" {
		t.Errorf("a * b = %s, want c", name)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		code     errors.Code
	}{
		{
			name:     "not toml",
			manifest: `{"json": true}`,
			code:     errors.ErrCodeInvalidManifest,
		},
		{
			name:     "no elements",
			manifest: `label = "empty"`,
			code:     errors.ErrCodeInvalidManifest,
		},
		{
			name: "duplicate element",
			manifest: `
elements = ["e", "e"]
table = [["e", "e"], ["e", "e"]]
`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "unknown element in table",
			manifest: `
elements = ["e", "a"]
table = [["e", "a"], ["a", "x"]]
`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "row count mismatch",
			manifest: `
elements = ["e", "a"]
table = [["e", "a"]]
`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "not a group",
			manifest: `
elements = ["e", "a"]
table = [["e", "a"], ["a", "a"]]
`,
			code: errors.ErrCodeIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.manifest), "test")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v4.toml")
	if err := os.WriteFile(path, []byte(klein4Manifest), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	if g.Order() != 4 {
		t.Errorf("Order() = %d, want 4", g.Order())
	}
}

func TestLoadManifestFallbackLabel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "myc2.toml")
	manifest := `
elements = ["e", "a"]
table = [["e", "a"], ["a", "e"]]
`
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	if g.Label() != "myc2" {
		t.Errorf("Label() = %q, want myc2", g.Label())
	}
}

func TestLoadManifestBadPath(t *testing.T) {
	if _, err := LoadManifest("nope.json"); !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("expected INVALID_MANIFEST, got %v", err)
	}
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
