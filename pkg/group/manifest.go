package group

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dedekind/pkg/errors"
)

// manifestFile is the TOML schema for hand-authored group tables.
//
//	label = "S3"
//	elements = ["e", "a", "b", "ab", "ba", "aba"]
//	table = [
//	    ["e", "a", ...],
//	    ...
//	]
//
// table[a][b] names the product of elements a and b.
type manifestFile struct {
	Label    string     `toml:"label"`
	Elements []string   `toml:"elements"`
	Table    [][]string `toml:"table"`
}

// LoadManifest reads a TOML group manifest and builds the group it
// describes. The table is always run through the full integrity check, so a
// manifest that does not describe a group fails with INTEGRITY_VIOLATION
// rather than producing a broken analysis.
//
// Returns INVALID_MANIFEST for file and schema problems, INVALID_TABLE for
// shape problems, INTEGRITY_VIOLATION for axiom failures.
func LoadManifest(path string) (*Table, error) {
	if err := errors.ValidateManifestPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return ParseManifest(data, defaultLabel(path))
}

// ParseManifest builds a group from raw TOML manifest bytes.
// fallbackLabel is used when the manifest does not set a label.
func ParseManifest(data []byte, fallbackLabel string) (*Table, error) {
	var m manifestFile
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	if len(m.Elements) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest defines no elements")
	}

	index := make(map[string]int, len(m.Elements))
	for i, name := range m.Elements {
		if err := errors.ValidateElementName(name); err != nil {
			return nil, err
		}
		if _, dup := index[name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "duplicate element name: %q", name)
		}
		index[name] = i
	}

	if len(m.Table) != len(m.Elements) {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"table has %d rows for %d elements", len(m.Table), len(m.Elements))
	}
	mul := make([][]int, len(m.Table))
	for a, row := range m.Table {
		if len(row) != len(m.Elements) {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"table row %d has %d entries for %d elements", a, len(row), len(m.Elements))
		}
		mul[a] = make([]int, len(row))
		for b, name := range row {
			p, ok := index[name]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidManifest,
					"table entry [%d][%d] names unknown element %q", a, b, name)
			}
			mul[a][b] = p
		}
	}

	label := m.Label
	if label == "" {
		label = fallbackLabel
	}
	return NewTable(label, m.Elements, mul)
}

// defaultLabel derives a display label from a manifest filename.
func defaultLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
