package analysis

import (
	"context"
	"testing"

	"github.com/matzehuels/dedekind/pkg/cache"
	"github.com/matzehuels/dedekind/pkg/errors"
	"github.com/matzehuels/dedekind/pkg/group"
)

func mustGroup(t *testing.T, descriptor string) *group.Table {
	t.Helper()
	g, err := group.FromDescriptor(descriptor)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAnalyzeQuaternion(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Analyze(context.Background(), mustGroup(t, "q8"), Options{})
	if err != nil {
		t.Fatal(err)
	}

	rep := res.Report
	if rep.Order != 8 {
		t.Errorf("order = %d, want 8", rep.Order)
	}
	if rep.IsAbelian {
		t.Error("Q8 is not abelian")
	}
	if !rep.IsDedekind || !rep.IsHamiltonian {
		t.Errorf("dedekind=%v hamiltonian=%v, want both true", rep.IsDedekind, rep.IsHamiltonian)
	}
	if rep.SubgroupCount != 6 {
		t.Errorf("subgroup count = %d, want 6", rep.SubgroupCount)
	}
	if rep.NormalSubgroupCount != 6 {
		t.Errorf("normal subgroup count = %d, want 6", rep.NormalSubgroupCount)
	}
	if rep.CenterOrder != 2 {
		t.Errorf("center order = %d, want 2", rep.CenterOrder)
	}
	if rep.CenterStructure != "cyclic group C2" {
		t.Errorf("center structure = %q", rep.CenterStructure)
	}
	if rep.CommutatorOrder != 2 {
		t.Errorf("commutator order = %d, want 2", rep.CommutatorOrder)
	}
	if rep.Exponent != 4 {
		t.Errorf("exponent = %d, want 4", rep.Exponent)
	}
	if rep.NilpotencyClass != 2 || !rep.IsNilpotent {
		t.Errorf("nilpotency class = (%d, %v), want (2, true)", rep.NilpotencyClass, rep.IsNilpotent)
	}
	if rep.DerivedLength != 2 || !rep.IsSolvable {
		t.Errorf("derived length = (%d, %v), want (2, true)", rep.DerivedLength, rep.IsSolvable)
	}
	if rep.CenterIndex != 4 {
		t.Errorf("center index = %d, want 4", rep.CenterIndex)
	}
	if rep.StructureDescription != "quaternion group Q8" {
		t.Errorf("structure = %q", rep.StructureDescription)
	}
	if res.CacheHit {
		t.Error("first run should not hit the cache")
	}
	if res.RunID == "" {
		t.Error("run ID should be set")
	}
}

func TestAnalyzeCyclic5(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Analyze(context.Background(), mustGroup(t, "c5"), Options{})
	if err != nil {
		t.Fatal(err)
	}

	rep := res.Report
	if rep.Order != 5 || !rep.IsAbelian || !rep.IsDedekind || rep.IsHamiltonian {
		t.Errorf("unexpected flags: %+v", rep)
	}
	if rep.Exponent != 5 {
		t.Errorf("exponent = %d, want 5", rep.Exponent)
	}
	if rep.StructureDescription != "cyclic group C5" {
		t.Errorf("structure = %q", rep.StructureDescription)
	}
	if rep.CenterIndex != 1 {
		t.Errorf("center index = %d, want 1", rep.CenterIndex)
	}
}

func TestAnalyzeHamiltonianProducts(t *testing.T) {
	tests := []struct {
		descriptor string
		order      int
	}{
		{"q8xc2", 16},
		{"q8xc3", 24},
	}

	r := NewRunner(nil, nil)
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			res, err := r.Analyze(context.Background(), mustGroup(t, tt.descriptor), Options{})
			if err != nil {
				t.Fatal(err)
			}
			if res.Report.Order != tt.order {
				t.Errorf("order = %d, want %d", res.Report.Order, tt.order)
			}
			if !res.Report.IsHamiltonian {
				t.Error("should be Hamiltonian")
			}
		})
	}
}

func TestAnalyzeCacheRoundtrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	ctx := context.Background()

	first, err := r.Analyze(ctx, mustGroup(t, "d4"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}

	second, err := r.Analyze(ctx, mustGroup(t, "d4"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit")
	}
	if second.Report != first.Report {
		t.Error("cached report should match computed report")
	}

	// Refresh bypasses the cache read.
	third, err := r.Analyze(ctx, mustGroup(t, "d4"), Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refresh run should not hit")
	}
}

func TestAnalyzeSharedTableSharesCacheKey(t *testing.T) {
	// C6 built directly and as C2 x C3 have different tables, so they must
	// not collide; two identical builds must.
	if fingerprint(mustGroup(t, "c6")) != fingerprint(mustGroup(t, "c6")) {
		t.Error("identical tables should share a fingerprint")
	}
	if fingerprint(mustGroup(t, "c6")) == fingerprint(mustGroup(t, "c2xc3")) {
		t.Error("different tables should not share a fingerprint")
	}
}

func TestAnalyzeCeiling(t *testing.T) {
	r := NewRunner(nil, nil)
	_, err := r.Analyze(context.Background(), mustGroup(t, "d6"), Options{MaxSubgroups: 3})
	if err == nil {
		t.Fatal("expected RESOURCE_EXCEEDED")
	}
	if !errors.Is(err, errors.ErrCodeResourceExceeded) {
		t.Errorf("code = %v", errors.GetCode(err))
	}
}

func TestAnalyzeAll(t *testing.T) {
	r := NewRunner(nil, nil)
	groups := []group.Group{
		mustGroup(t, "c5"),
		mustGroup(t, "q8"),
		mustGroup(t, "d4"),
	}

	results, err := r.AnalyzeAll(context.Background(), groups, Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// Input order is preserved.
	for i, g := range groups {
		if results[i].Label != g.Label() {
			t.Errorf("result %d label = %q, want %q", i, results[i].Label, g.Label())
		}
	}
}

func TestAnalyzeAllPropagatesError(t *testing.T) {
	r := NewRunner(nil, nil)
	groups := []group.Group{
		mustGroup(t, "c5"),
		mustGroup(t, "d6"),
	}
	_, err := r.AnalyzeAll(context.Background(), groups, Options{MaxSubgroups: 3})
	if err == nil {
		t.Fatal("expected enumeration ceiling error")
	}
}

func TestOptionsValidation(t *testing.T) {
	bad := []Options{
		{MaxSubgroups: -1},
		{Workers: -2},
		{CacheTTL: -1},
	}
	for _, opts := range bad {
		if err := opts.ValidateAndSetDefaults(); err == nil {
			t.Errorf("options %+v should fail validation", opts)
		}
	}

	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.MaxSubgroups == 0 || opts.Workers == 0 || opts.CacheTTL == 0 {
		t.Error("defaults should be filled in")
	}
}
