package lattice

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dedekind/pkg/group"
)

// DiagramOptions configures Hasse diagram rendering.
type DiagramOptions struct {
	// HighlightNormal fills normal subgroups with a distinct color.
	HighlightNormal bool

	// ElementNames labels nodes with the subgroup's element names instead
	// of just its order. Only applied to subgroups of at most eight
	// elements; larger ones fall back to the order label.
	ElementNames bool
}

// ToDOT converts a subgroup lattice to Graphviz DOT format as a Hasse
// diagram: nodes are subgroups, edges are covering relations (H below K
// with nothing strictly between), and subgroups of equal order share a
// rank. The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG].
func ToDOT(g group.Group, subs []group.Subgroup, opts DiagramOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph lattice {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for i, h := range subs {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(g, h, opts))}
		if opts.HighlightNormal && IsNormal(g, h) {
			attrs = append(attrs, "fillcolor=lightblue")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range coverEdges(subs) {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e[0], e[1])
	}

	// Rank subgroups of equal order together so layers read as levels of
	// the lattice.
	buf.WriteString("\n")
	for _, level := range orderLevels(subs) {
		if len(level) < 2 {
			continue
		}
		names := make([]string, len(level))
		for i, idx := range level {
			names[i] = fmt.Sprintf("n%d", idx)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s }\n", strings.Join(names, "; "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(g group.Group, h group.Subgroup, opts DiagramOptions) string {
	if opts.ElementNames && h.Order() <= 8 {
		return "{" + strings.Join(h.NameList(g), ", ") + "}"
	}
	return fmt.Sprintf("order %d", h.Order())
}

// coverEdges computes the covering relation of the lattice: pairs (i, j)
// where subs[i] is a maximal proper subgroup of subs[j]. Assumes subs is
// sorted by ascending order, as Enumerate guarantees.
func coverEdges(subs []group.Subgroup) [][2]int {
	var edges [][2]int
	for i, h := range subs {
		for j, k := range subs {
			if k.Order() <= h.Order() || !contains(k, h) {
				continue
			}
			covered := false
			for _, l := range subs {
				if l.Order() > h.Order() && l.Order() < k.Order() && contains(l, h) && contains(k, l) {
					covered = true
					break
				}
			}
			if !covered {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// contains reports whether every element of inner lies in outer.
func contains(outer, inner group.Subgroup) bool {
	for _, x := range inner.Elements() {
		if !outer.Contains(x) {
			return false
		}
	}
	return true
}

// orderLevels groups subgroup indices by subgroup order, ascending.
func orderLevels(subs []group.Subgroup) [][]int {
	var levels [][]int
	var current []int
	for i, h := range subs {
		if len(current) > 0 && subs[current[0]].Order() != h.Order() {
			levels = append(levels, current)
			current = nil
		}
		current = append(current, i)
	}
	if len(current) > 0 {
		levels = append(levels, current)
	}
	return levels
}

// RenderSVG renders a DOT lattice diagram to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT lattice diagram to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
