package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dedekind/pkg/analysis"
	"github.com/matzehuels/dedekind/pkg/server"
)

// serveCommand creates the serve command for the HTTP analysis API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		noCache      bool
		maxSubgroups int
		ttl          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Run the HTTP analysis API.

Endpoints:
  GET /healthz
  GET /api/v1/report/{descriptor}   analysis report (refresh=true bypasses cache)
  GET /api/v1/catalog               recognized non-abelian groups

Set ` + redisEnv + ` to share the report cache across replicas via Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, store, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer store.Close()

			api := server.New(c.Logger, runner, server.Config{
				Addr: addr,
				Analysis: analysis.Options{
					MaxSubgroups: maxSubgroups,
					CacheTTL:     ttl,
				},
			})
			return api.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().IntVar(&maxSubgroups, "max-subgroups", 0, "ceiling on the subgroup enumeration (0 = default)")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", 0, "cache entry lifetime (0 = default)")

	return cmd
}
