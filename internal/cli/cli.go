// Package cli implements the dedekind command-line interface.
//
// This package provides commands for analyzing finite groups, drawing their
// subgroup lattices, listing the recognized-group catalog, and serving the
// analysis API over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - analyze: Compute the full structural report for one or more groups
//   - lattice: Draw the subgroup lattice as DOT, SVG, or PNG
//   - catalog: List the non-abelian groups the describer recognizes
//   - serve: Run the HTTP analysis API
//   - cache: Manage the report cache
//
// Groups are named by descriptors like "q8", "d4", or "q8xc2", or by a path
// to a TOML multiplication table manifest.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dedekind/pkg/analysis"
	"github.com/matzehuels/dedekind/pkg/buildinfo"
	"github.com/matzehuels/dedekind/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dedekind"

	// redisEnv names the environment variable holding a Redis address for
	// the report cache. When unset the CLI uses the file cache.
	redisEnv = "DEDEKIND_REDIS_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dedekind",
		Short:        "Dedekind analyzes the structure of finite groups",
		Long:         `Dedekind is a CLI tool for analyzing finite groups given by multiplication tables: it enumerates subgroup lattices, computes structural invariants, and classifies groups as abelian, Dedekind, or Hamiltonian.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.latticeCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an analysis runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*analysis.Runner, cache.Cache, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, nil, err
	}
	return analysis.NewRunner(store, c.Logger), store, nil
}

// newCache picks the report cache backend: Redis when DEDEKIND_REDIS_ADDR
// is set, the XDG file cache otherwise, and the null cache when caching is
// disabled or no usable directory exists.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv(redisEnv); addr != "" {
		store, err := cache.NewRedisCache(context.Background(), addr)
		if err != nil {
			c.Logger.Warn("redis unavailable, falling back to file cache", "addr", addr, "error", err)
		} else {
			return store, nil
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dedekind/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
