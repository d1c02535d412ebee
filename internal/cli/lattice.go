package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dedekind/pkg/errors"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

// latticeCommand creates the lattice command for drawing Hasse diagrams.
func (c *CLI) latticeCommand() *cobra.Command {
	var (
		output       string
		highlight    bool
		names        bool
		maxSubgroups int
	)

	cmd := &cobra.Command{
		Use:   "lattice <group>",
		Short: "Draw the subgroup lattice as a Hasse diagram",
		Long: `Draw the subgroup lattice as a Hasse diagram.

The output format follows the file extension: .dot writes Graphviz source,
.svg and .png render it. Without --output the DOT source goes to stdout.

  dedekind lattice q8 -o q8.svg
  dedekind lattice d4 --highlight-normal -o d4.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLattice(args[0], output, highlight, names, maxSubgroups)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg, or .png)")
	cmd.Flags().BoolVar(&highlight, "highlight-normal", true, "highlight normal subgroups")
	cmd.Flags().BoolVar(&names, "names", true, "label small subgroups with element names")
	cmd.Flags().IntVar(&maxSubgroups, "max-subgroups", 0, "ceiling on the subgroup enumeration (0 = default)")

	return cmd
}

func (c *CLI) runLattice(arg, output string, highlight, names bool, maxSubgroups int) error {
	g, err := resolveGroup(arg)
	if err != nil {
		return err
	}

	subs, err := lattice.Enumerate(g, lattice.Options{MaxSubgroups: maxSubgroups})
	if err != nil {
		return err
	}
	c.Logger.Debug("lattice enumerated", "group", g.Label(), "subgroups", len(subs))

	dot := lattice.ToDOT(g, subs, lattice.DiagramOptions{
		HighlightNormal: highlight,
		ElementNames:    names,
	})

	if output == "" {
		fmt.Print(dot)
		return nil
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot":
		data = []byte(dot)
	case ".svg":
		data, err = lattice.RenderSVG(dot)
	case ".png":
		data, err = lattice.RenderPNG(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (want .dot, .svg, or .png)", ext)
	}
	if err != nil {
		return fmt.Errorf("render lattice: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Drew lattice of %s (%d subgroups)", g.Label(), len(subs))
	printFile(output)
	return nil
}
