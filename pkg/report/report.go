// Package report serializes analysis results for files and terminals. It
// consumes completed records only and never reaches back into the analysis
// internals.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/dedekind/pkg/analysis"
)

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONFile writes v as indented JSON to path, creating parent
// directories as needed.
func WriteJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteMarkdown writes one result as a Markdown property table.
func WriteMarkdown(w io.Writer, res *analysis.Result) error {
	rep := res.Report

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", res.Label)
	fmt.Fprintf(&b, "%s\n\n", rep.StructureDescription)
	b.WriteString("| Property | Value |\n")
	b.WriteString("| --- | --- |\n")

	row := func(name string, value any) {
		fmt.Fprintf(&b, "| %s | %v |\n", name, value)
	}
	row("Order", rep.Order)
	row("Abelian", rep.IsAbelian)
	row("Dedekind", rep.IsDedekind)
	row("Hamiltonian", rep.IsHamiltonian)
	row("Solvable", rep.IsSolvable)
	row("Nilpotent", rep.IsNilpotent)
	row("Subgroups", rep.SubgroupCount)
	row("Normal subgroups", rep.NormalSubgroupCount)
	row("Center", fmt.Sprintf("%s (order %d)", rep.CenterStructure, rep.CenterOrder))
	row("Commutator subgroup", fmt.Sprintf("%s (order %d)", rep.CommutatorStructure, rep.CommutatorOrder))
	row("Derived length", rep.DerivedLength)
	row("Nilpotency class", rep.NilpotencyClass)
	row("Exponent", rep.Exponent)
	row("Center index", rep.CenterIndex)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdownTable writes several results as one comparison table, a row
// per group.
func WriteMarkdownTable(w io.Writer, results []*analysis.Result) error {
	var b strings.Builder
	b.WriteString("| Group | Order | Structure | Abelian | Dedekind | Hamiltonian | Subgroups | Normal |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, res := range results {
		rep := res.Report
		fmt.Fprintf(&b, "| %s | %d | %s | %v | %v | %v | %d | %d |\n",
			res.Label, rep.Order, rep.StructureDescription,
			rep.IsAbelian, rep.IsDedekind, rep.IsHamiltonian,
			rep.SubgroupCount, rep.NormalSubgroupCount)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
