package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dedekind/pkg/cache"
	"github.com/matzehuels/dedekind/pkg/classify"
	"github.com/matzehuels/dedekind/pkg/errors"
	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/invariant"
	"github.com/matzehuels/dedekind/pkg/lattice"
	"github.com/matzehuels/dedekind/pkg/observability"
)

// Options configures an analysis run.
type Options struct {
	// MaxSubgroups caps the subgroup enumeration. Zero means
	// lattice.DefaultMaxSubgroups.
	MaxSubgroups int

	// Verify runs the full group axiom check before analyzing. Constructor
	// output is correct by construction; manifest-loaded tables are verified
	// at parse time, so this is belt-and-braces for custom backends.
	Verify bool

	// Refresh bypasses the cache read (the result is still written back).
	Refresh bool

	// CacheTTL is the lifetime of the cached report. Zero means
	// cache.DefaultTTL.
	CacheTTL time.Duration

	// Workers bounds concurrent group analyses in AnalyzeAll. Zero means
	// runtime.NumCPU().
	Workers int

	validated bool
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.MaxSubgroups == 0 {
		o.MaxSubgroups = lattice.DefaultMaxSubgroups
	}
	if o.MaxSubgroups < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "max subgroups must be positive, got %d", o.MaxSubgroups)
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = cache.DefaultTTL
	}
	if o.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "cache TTL must not be negative")
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "workers must be positive, got %d", o.Workers)
	}
	o.validated = true
	return nil
}

// Stats carries timing information about a run.
type Stats struct {
	ElapsedMS int64 `json:"elapsed_ms"`
}

// Result wraps a report with run metadata.
type Result struct {
	RunID    string `json:"run_id"`
	Label    string `json:"label"`
	Report   Report `json:"report"`
	CacheHit bool   `json:"cache_hit"`
	Stats    Stats  `json:"stats"`
}

// Runner executes analyses against a report cache.
type Runner struct {
	cache  cache.Cache
	logger *charmlog.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// discards log output.
func NewRunner(c cache.Cache, logger *charmlog.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Analyze produces the full structural report for g, serving from cache
// when an identical table was analyzed before.
func (r *Runner) Analyze(ctx context.Context, g group.Group, opts Options) (*Result, error) {
	start := time.Now()
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	if opts.Verify {
		if err := group.Verify(g); err != nil {
			return nil, err
		}
	}

	key := cache.ReportKey(fingerprint(g), opts.MaxSubgroups)
	logger := r.logger.With("group", g.Label(), "order", g.Order())

	if !opts.Refresh {
		if cached, hit, err := r.cache.Get(ctx, key); err != nil {
			logger.Warn("cache read failed, recomputing", "error", err)
		} else if hit {
			var report Report
			if err := json.Unmarshal(cached, &report); err == nil {
				observability.Cache().OnCacheHit(ctx, "report")
				logger.Debug("report served from cache")
				return r.newResult(g, report, true, start), nil
			}
			logger.Warn("corrupt cache entry, recomputing")
		}
	}
	observability.Cache().OnCacheMiss(ctx, "report")

	report, err := r.compute(ctx, g, opts)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := r.cache.Set(ctx, key, payload, opts.CacheTTL); err != nil {
			logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "report", len(payload))
		}
	}

	return r.newResult(g, *report, false, start), nil
}

func (r *Runner) newResult(g group.Group, report Report, hit bool, start time.Time) *Result {
	return &Result{
		RunID:    uuid.NewString(),
		Label:    g.Label(),
		Report:   report,
		CacheHit: hit,
		Stats:    Stats{ElapsedMS: time.Since(start).Milliseconds()},
	}
}

func (r *Runner) compute(ctx context.Context, g group.Group, opts Options) (*Report, error) {
	logger := r.logger.With("group", g.Label(), "order", g.Order())

	observability.Analysis().OnEnumerateStart(ctx, g.Label(), g.Order())
	enumStart := time.Now()
	subs, err := lattice.Enumerate(g, lattice.Options{MaxSubgroups: opts.MaxSubgroups})
	observability.Analysis().OnEnumerateComplete(ctx, g.Label(), len(subs), time.Since(enumStart), err)
	if err != nil {
		return nil, err
	}
	logger.Debug("subgroup lattice enumerated", "subgroups", len(subs))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalCount := lattice.NormalCount(g, subs)
	center := invariant.Center(g)
	commutator := invariant.CommutatorSubgroup(g)

	centerStructure, err := structureOf(g, center, "center")
	if err != nil {
		return nil, err
	}
	commutatorStructure, err := structureOf(g, commutator, "commutator")
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abelian := classify.IsAbelian(g)
	dedekind := classify.IsDedekind(g, subs)
	derivedLength, solvable := invariant.DerivedLength(g)
	nilpotencyClass, nilpotent := invariant.NilpotencyClass(g)

	classifyStart := time.Now()
	structure := classify.Describe(g)
	observability.Analysis().OnClassifyComplete(ctx, g.Label(), structure, time.Since(classifyStart))
	logger.Debug("group classified", "structure", structure)

	return &Report{
		Order:                g.Order(),
		StructureDescription: structure,
		IsAbelian:            abelian,
		IsDedekind:           dedekind,
		IsHamiltonian:        dedekind && !abelian,
		IsSolvable:           solvable,
		IsNilpotent:          nilpotent,
		SubgroupCount:        len(subs),
		NormalSubgroupCount:  normalCount,
		CenterOrder:          center.Order(),
		CenterStructure:      centerStructure,
		CommutatorOrder:      commutator.Order(),
		CommutatorStructure:  commutatorStructure,
		NilpotencyClass:      nilpotencyClass,
		DerivedLength:        derivedLength,
		Exponent:             invariant.Exponent(g),
		CenterIndex:          invariant.CenterIndex(g),
	}, nil
}

// structureOf describes the group induced on a subgroup's elements.
func structureOf(g group.Group, h group.Subgroup, label string) (string, error) {
	sub, err := group.Restrict(g, h.Elements(), label)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "%s is not closed", label)
	}
	return classify.Describe(sub), nil
}

// AnalyzeAll analyzes several groups concurrently with a bounded worker
// pool, preserving input order in the results. The first error cancels the
// remaining work.
func (r *Runner) AnalyzeAll(ctx context.Context, groups []group.Group, opts Options) ([]*Result, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(groups))
	sem := make(chan struct{}, opts.Workers)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, g := range groups {
		wg.Add(1)
		go func(i int, g group.Group) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			res, err := r.Analyze(ctx, g, opts)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("analyze %s: %w", g.Label(), err)
				}
				mu.Unlock()
				cancel()
				return
			}
			results[i] = res
		}(i, g)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// fingerprint serializes the full multiplication table through the Group
// interface and hashes it, so any backend with the same table maps to the
// same cache key.
func fingerprint(g group.Group) string {
	n := g.Order()
	buf := make([]byte, 0, 4+n*n*4)
	buf = appendInt(buf, n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			buf = appendInt(buf, g.Multiply(a, b))
		}
	}
	return cache.Hash(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf,
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
