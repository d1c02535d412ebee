package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dedekind/pkg/analysis"
	"github.com/matzehuels/dedekind/pkg/report"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		jsonOut      bool
		markdownOut  bool
		output       string
		noCache      bool
		refresh      bool
		verify       bool
		maxSubgroups int
		workers      int
		ttl          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze <group>...",
		Short: "Compute the full structural report for one or more groups",
		Long: `Compute the full structural report for one or more groups.

Each argument is a group descriptor (cN, dN, q8, klein, joined with 'x' for
direct products) or a path to a TOML multiplication table manifest:

  dedekind analyze q8
  dedekind analyze q8xc2 d4 c12
  dedekind analyze examples/groups/s3.toml

The report covers the subgroup lattice size, normality counts, center and
commutator structure, derived length, nilpotency class, exponent, and the
abelian/Dedekind/Hamiltonian classification. Results are cached by table
fingerprint for faster subsequent runs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := analysis.Options{
				MaxSubgroups: maxSubgroups,
				Verify:       verify,
				Refresh:      refresh,
				CacheTTL:     ttl,
				Workers:      workers,
			}
			return c.runAnalyze(cmd.Context(), args, opts, output, jsonOut, markdownOut, noCache)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&markdownOut, "markdown", false, "print the report as a Markdown table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON report(s) to a file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached report exists")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the group axioms before analyzing")
	cmd.Flags().IntVar(&maxSubgroups, "max-subgroups", 0, "ceiling on the subgroup enumeration (0 = default)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent analyses when given several groups (0 = CPU count)")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", 0, "cache entry lifetime (0 = default)")

	return cmd
}

// runAnalyze resolves the groups, runs the analyses, and writes the output.
func (c *CLI) runAnalyze(ctx context.Context, args []string, opts analysis.Options, output string, jsonOut, markdownOut, noCache bool) error {
	groups, err := resolveGroups(args)
	if err != nil {
		return err
	}

	runner, store, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer store.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", strings.Join(args, ", ")))
	spinner.Start()

	results, err := runner.AnalyzeAll(ctx, groups, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Analyzed %d group(s)", len(results)))

	if output != "" {
		var payload any = results
		if len(results) == 1 {
			payload = results[0]
		}
		if err := report.WriteJSONFile(output, payload); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Analyzed %d group(s)", len(results))
		printFile(output)
		return nil
	}

	switch {
	case jsonOut:
		var payload any = results
		if len(results) == 1 {
			payload = results[0]
		}
		return report.WriteJSON(os.Stdout, payload)
	case markdownOut:
		if len(results) == 1 {
			return report.WriteMarkdown(os.Stdout, results[0])
		}
		return report.WriteMarkdownTable(os.Stdout, results)
	default:
		for i, res := range results {
			if i > 0 {
				printNewline()
			}
			renderResult(res)
		}
		return nil
	}
}
