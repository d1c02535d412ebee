package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dedekind/pkg/classify"
	"github.com/matzehuels/dedekind/pkg/report"
)

// catalogCommand creates the catalog command.
func (c *CLI) catalogCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the non-abelian groups the describer recognizes",
		Long: `List the non-abelian groups the describer recognizes.

Abelian groups are always described exactly from their invariant factors
and need no catalog entry. Non-abelian groups outside this catalog get a
generic description built from their derived and lower central series.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := classify.Catalog()
			if jsonOut {
				return report.WriteJSON(os.Stdout, entries)
			}
			for _, e := range entries {
				fmt.Println(StyleHighlight.Render(fmt.Sprintf("%-8s", e.Descriptor)) + StyleValue.Render(e.Name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the catalog as JSON")
	return cmd
}
