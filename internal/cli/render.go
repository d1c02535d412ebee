package cli

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dedekind/pkg/analysis"
)

// renderResult writes one analysis result to stdout as a styled card.
func renderResult(res *analysis.Result) {
	rep := res.Report

	fmt.Println(StyleTitle.Render(res.Label) + " " + StyleDim.Render(fmt.Sprintf("(order %d)", rep.Order)))
	fmt.Println("  " + StyleHighlight.Render(rep.StructureDescription))
	printNewline()

	fmt.Println("  " + flagLine("abelian", rep.IsAbelian) +
		StyleDim.Render(" · ") + flagLine("dedekind", rep.IsDedekind) +
		StyleDim.Render(" · ") + flagLine("hamiltonian", rep.IsHamiltonian))
	fmt.Println("  " + flagLine("solvable", rep.IsSolvable) +
		StyleDim.Render(" · ") + flagLine("nilpotent", rep.IsNilpotent))
	printNewline()

	renderRow("Subgroups", fmt.Sprintf("%d (%d normal)", rep.SubgroupCount, rep.NormalSubgroupCount))
	renderRow("Center", fmt.Sprintf("%s, index %d", rep.CenterStructure, rep.CenterIndex))
	renderRow("Commutator", rep.CommutatorStructure)
	renderRow("Exponent", fmt.Sprintf("%d", rep.Exponent))
	if rep.IsSolvable {
		renderRow("Derived length", fmt.Sprintf("%d", rep.DerivedLength))
	}
	if rep.IsNilpotent {
		renderRow("Nilpotency class", fmt.Sprintf("%d", rep.NilpotencyClass))
	}

	status := iconFresh
	statusStyle := styleComputed
	if res.CacheHit {
		status = iconCached
		statusStyle = styleCached
	}
	printNewline()
	fmt.Println("  " + statusStyle.Render(status) + StyleDim.Render(fmt.Sprintf(" · %dms", res.Stats.ElapsedMS)))
}

// renderRow prints an aligned label/value pair.
func renderRow(label, value string) {
	const width = 18
	padded := label + strings.Repeat(" ", max(1, width-len(label)))
	fmt.Println("  " + StyleDim.Render(padded) + StyleValue.Render(value))
}

// flagLine renders a boolean classification flag.
func flagLine(name string, set bool) string {
	if set {
		return styleFlagTrue.Render(iconSuccess + " " + name)
	}
	return styleFlagFalse.Render(iconError + " " + name)
}
