package cli

import (
	"strings"

	"github.com/matzehuels/dedekind/pkg/group"
)

// resolveGroup turns one CLI argument into a group: a path ending in .toml
// is loaded as a multiplication table manifest, anything else is parsed as
// a group descriptor (e.g. "q8", "d4", "q8xc2").
func resolveGroup(arg string) (*group.Table, error) {
	if strings.HasSuffix(strings.ToLower(arg), ".toml") {
		return group.LoadManifest(arg)
	}
	return group.FromDescriptor(arg)
}

// resolveGroups resolves every argument, failing on the first bad one.
func resolveGroups(args []string) ([]group.Group, error) {
	groups := make([]group.Group, 0, len(args))
	for _, arg := range args {
		g, err := resolveGroup(arg)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
