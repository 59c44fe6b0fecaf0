package reconcile_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/logging"
	"github.com/romweave/romcheck/pkg/reconcile"
	"github.com/romweave/romcheck/pkg/romset"
)

const (
	digA = "b89afb21e1a0d356e098e1d8a30c32a13c35ab43"
	digB = "0a5c7f2b9d14e6783c21f90b4ab8ed2d64d2fa11"
	digC = "77c8ee7d6fae49c0c3c9b1dce0c6b27511a9cbd2"
	digD = "e3191ccf389b36ca1bbdc22a2a1c07666b517a6b"
)

// testSet builds a set from a plain name to digest map.
func testSet(name, cloneOf string, roms map[string]string) *romset.Set {
	m := make(romset.DigestMap, len(roms))
	for n, d := range roms {
		m[n] = romset.Digest(d)
	}
	return &romset.Set{Name: name, CloneOf: cloneOf, ROMs: m}
}

func biosSet(name string, roms map[string]string) *romset.Set {
	s := testSet(name, "", roms)
	s.IsBIOS = true
	return s
}

func buildCatalog(t *testing.T, sets ...*romset.Set) *romset.Catalog {
	t.Helper()
	cat := romset.NewCatalog()
	for _, s := range sets {
		require.NoError(t, cat.Add(s))
	}
	return cat
}

func romsOf(t *testing.T, cat *romset.Catalog, name string) romset.DigestMap {
	t.Helper()
	set, ok := cat.Get(name)
	require.True(t, ok, "set %q should be in the checklist", name)
	return set.ROMs
}

// snapshot captures every set's members for before/after comparison.
func snapshot(cat *romset.Catalog) map[string]romset.DigestMap {
	out := make(map[string]romset.DigestMap, cat.Len())
	for _, s := range cat.List() {
		out[s.Name] = s.ROMs.Clone()
	}
	return out
}

func checklist(t *testing.T, cat *romset.Catalog, st reconcile.SetType) *reconcile.Result {
	t.Helper()
	r, err := reconcile.New(reconcile.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	result, err := r.Checklist(context.Background(), cat, st)
	require.NoError(t, err)
	require.NotNil(t, result.Catalog)
	return result
}

func TestChecklistNonMerged(t *testing.T) {
	cat := buildCatalog(t,
		testSet("pacman", "", map[string]string{"pm1.bin": digA, "pm2.bin": digB}),
		testSet("pacmanf", "pacman", map[string]string{"pm1.bin": digA, "fast.bin": digC}),
	)

	result := checklist(t, cat, reconcile.NonMerged)

	assert.Equal(t, []string{"pacman", "pacmanf"}, result.Catalog.Names())
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 2, result.Metadata.Stats.SetsIn)
	assert.Equal(t, 2, result.Metadata.Stats.SetsOut)

	want := romset.DigestMap{"pm1.bin": digA, "fast.bin": digC}
	if diff := cmp.Diff(want, romsOf(t, result.Catalog, "pacmanf")); diff != "" {
		t.Errorf("clone members mismatch (-want +got):\n%s", diff)
	}

	// The checklist is a copy. Mutating it must not reach the input.
	romsOf(t, result.Catalog, "pacman")["pm1.bin"] = digD
	assert.Equal(t, romset.Digest(digA), romsOf(t, cat, "pacman")["pm1.bin"])
}

func TestChecklistMerged(t *testing.T) {
	cat := buildCatalog(t,
		biosSet("neogeo", map[string]string{"sfix.sfix": digD}),
		testSet("mslug", "", map[string]string{"m1.rom": digA, "p1.rom": digB}),
		testSet("mslugx", "mslug", map[string]string{"p1.rom": digB, "px.rom": digC}),
	)

	result := checklist(t, cat, reconcile.Merged)

	assert.Equal(t, []string{"neogeo", "mslug"}, result.Catalog.Names())
	assert.False(t, result.Catalog.Exists("mslugx"))

	want := romset.DigestMap{"m1.rom": digA, "p1.rom": digB, "px.rom": digC}
	if diff := cmp.Diff(want, romsOf(t, result.Catalog, "mslug")); diff != "" {
		t.Errorf("merged parent mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.Metadata.Stats.SetsAbsorbed)
	assert.Equal(t, 1, result.Metadata.Stats.MembersMerged)
	assert.Equal(t, 2, result.Metadata.Stats.SetsOut)
}

func TestChecklistMergedDigestConflict(t *testing.T) {
	cat := buildCatalog(t,
		testSet("galaga", "", map[string]string{"gg1.bin": digA}),
		testSet("galagab", "galaga", map[string]string{"gg1.bin": digB}),
	)

	result := checklist(t, cat, reconcile.Merged)

	// The parent's digest wins, the clone is still absorbed.
	assert.Equal(t, romset.Digest(digA), romsOf(t, result.Catalog, "galaga")["gg1.bin"])
	assert.False(t, result.Catalog.Exists("galagab"))

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, reconcile.WarnDigestConflict, w.Kind)
	assert.Equal(t, "galagab", w.Set)
	assert.Equal(t, "galaga", w.Parent)
	assert.Equal(t, "gg1.bin", w.ROM)
	assert.Equal(t, romset.Digest(digA), w.ParentDigest)
	assert.Equal(t, romset.Digest(digB), w.CloneDigest)
	assert.Equal(t, 1, result.Metadata.Stats.DigestConflicts)
}

func TestChecklistMergedFillsMissingDigest(t *testing.T) {
	cat := buildCatalog(t,
		testSet("dino", "", map[string]string{"cd.bin": ""}),
		testSet("dinou", "dino", map[string]string{"cd.bin": digA}),
	)

	result := checklist(t, cat, reconcile.Merged)

	assert.Equal(t, romset.Digest(digA), romsOf(t, result.Catalog, "dino")["cd.bin"])
	assert.Empty(t, result.Warnings)
}

func TestChecklistMergedDanglingParent(t *testing.T) {
	cat := buildCatalog(t,
		testSet("orphan", "ghost", map[string]string{"o1.bin": digA}),
	)

	result := checklist(t, cat, reconcile.Merged)

	// The set stays in the checklist untouched.
	assert.True(t, result.Catalog.Exists("orphan"))
	assert.Equal(t, romset.Digest(digA), romsOf(t, result.Catalog, "orphan")["o1.bin"])

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, reconcile.WarnDanglingParent, w.Kind)
	assert.Equal(t, "orphan", w.Set)
	assert.Equal(t, "ghost", w.Parent)
	assert.Contains(t, w.String(), "orphan")
	assert.Contains(t, w.String(), "ghost")
	assert.Equal(t, 1, result.Metadata.Stats.DanglingParents)
}

func TestChecklistMergedKeepsBIOS(t *testing.T) {
	bios := biosSet("decocass", map[string]string{"v0.bin": digA})
	bios.CloneOf = "deco"

	cat := buildCatalog(t,
		testSet("deco", "", map[string]string{"d1.bin": digB}),
		bios,
	)

	result := checklist(t, cat, reconcile.Merged)

	// BIOS sets never merge upward, parent reference or not.
	assert.True(t, result.Catalog.Exists("decocass"))
	assert.Equal(t, romset.DigestMap{"d1.bin": digB}, romsOf(t, result.Catalog, "deco"))
	assert.Zero(t, result.Metadata.Stats.SetsAbsorbed)
}

func TestChecklistMergedChain(t *testing.T) {
	orders := map[string][]*romset.Set{
		"parents first": {
			testSet("root", "", map[string]string{"r.bin": digA}),
			testSet("mid", "root", map[string]string{"m.bin": digB}),
			testSet("leaf", "mid", map[string]string{"l.bin": digC}),
		},
		"parents last": {
			testSet("leaf", "mid", map[string]string{"l.bin": digC}),
			testSet("mid", "root", map[string]string{"m.bin": digB}),
			testSet("root", "", map[string]string{"r.bin": digA}),
		},
	}

	for name, sets := range orders {
		t.Run(name, func(t *testing.T) {
			result := checklist(t, buildCatalog(t, sets...), reconcile.Merged)

			require.Equal(t, 1, result.Catalog.Len())
			want := romset.DigestMap{"r.bin": digA, "m.bin": digB, "l.bin": digC}
			if diff := cmp.Diff(want, romsOf(t, result.Catalog, "root")); diff != "" {
				t.Errorf("chain rollup mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 2, result.Metadata.Stats.SetsAbsorbed)
		})
	}
}

func TestChecklistSplit(t *testing.T) {
	cat := buildCatalog(t,
		testSet("pacman", "", map[string]string{"pm1.bin": digA, "pm2.bin": digB}),
		testSet("pacmanf", "pacman", map[string]string{"pm1.bin": digA, "fast.bin": digC}),
		testSet("pacmanc", "pacman", map[string]string{"pm1.bin": digA, "pm2.bin": digB}),
	)

	result := checklist(t, cat, reconcile.Split)

	// Parents keep everything, clones keep the delta.
	assert.Equal(t, []string{"pacman", "pacmanf", "pacmanc"}, result.Catalog.Names())
	assert.Equal(t, romset.DigestMap{"pm1.bin": digA, "pm2.bin": digB}, romsOf(t, result.Catalog, "pacman"))
	assert.Equal(t, romset.DigestMap{"fast.bin": digC}, romsOf(t, result.Catalog, "pacmanf"))

	// A clone identical to its parent trims to an empty set but stays listed.
	assert.Empty(t, romsOf(t, result.Catalog, "pacmanc"))
	assert.Equal(t, 3, result.Metadata.Stats.MembersTrimmed)
}

func TestChecklistSplitUsesOriginalParent(t *testing.T) {
	cat := buildCatalog(t,
		testSet("gp", "", map[string]string{"x.bin": digA}),
		testSet("mid", "gp", map[string]string{"x.bin": digA, "y.bin": digB}),
		testSet("leaf", "mid", map[string]string{"x.bin": digA, "z.bin": digC}),
	)

	result := checklist(t, cat, reconcile.Split)

	// mid loses x.bin against gp. leaf still trims x.bin because the
	// comparison runs against mid's original members, not the trimmed mid.
	assert.Equal(t, romset.DigestMap{"y.bin": digB}, romsOf(t, result.Catalog, "mid"))
	assert.Equal(t, romset.DigestMap{"z.bin": digC}, romsOf(t, result.Catalog, "leaf"))
}

func TestChecklistSplitDigestConflict(t *testing.T) {
	cat := buildCatalog(t,
		testSet("frogger", "", map[string]string{"fr1.bin": digA}),
		testSet("froggers", "frogger", map[string]string{"fr1.bin": digB, "fs1.bin": digC}),
	)

	result := checklist(t, cat, reconcile.Split)

	// The member comes off the clone even though the digests disagree.
	assert.Equal(t, romset.DigestMap{"fs1.bin": digC}, romsOf(t, result.Catalog, "froggers"))

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, reconcile.WarnDigestConflict, w.Kind)
	assert.Equal(t, "froggers", w.Set)
	assert.Equal(t, romset.Digest(digA), w.ParentDigest)
	assert.Equal(t, romset.Digest(digB), w.CloneDigest)
}

func TestChecklistSplitDanglingParent(t *testing.T) {
	cat := buildCatalog(t,
		testSet("orphan", "ghost", map[string]string{"o1.bin": digA, "o2.bin": digB}),
	)

	result := checklist(t, cat, reconcile.Split)

	want := romset.DigestMap{"o1.bin": digA, "o2.bin": digB}
	assert.Equal(t, want, romsOf(t, result.Catalog, "orphan"))
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, reconcile.WarnDanglingParent, result.Warnings[0].Kind)
}

func TestChecklistSplitKeepsBIOS(t *testing.T) {
	bios := biosSet("neogeo", map[string]string{"sfix.sfix": digA})
	bios.CloneOf = "neogeoa"

	cat := buildCatalog(t,
		testSet("neogeoa", "", map[string]string{"sfix.sfix": digA}),
		bios,
	)

	result := checklist(t, cat, reconcile.Split)

	assert.Equal(t, romset.DigestMap{"sfix.sfix": digA}, romsOf(t, result.Catalog, "neogeo"))
	assert.Zero(t, result.Metadata.Stats.MembersTrimmed)
}

func TestChecklistInputUnmodified(t *testing.T) {
	build := func() *romset.Catalog {
		return buildCatalog(t,
			testSet("parent", "", map[string]string{"p.bin": digA, "s.bin": digB}),
			testSet("clone", "parent", map[string]string{"s.bin": digC, "c.bin": digD}),
		)
	}

	for _, st := range []reconcile.SetType{reconcile.Merged, reconcile.Split, reconcile.NonMerged} {
		t.Run(st.String(), func(t *testing.T) {
			cat := build()
			before := snapshot(cat)
			checklist(t, cat, st)
			if diff := cmp.Diff(before, snapshot(cat)); diff != "" {
				t.Errorf("input catalog changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestChecklistValidation(t *testing.T) {
	r, err := reconcile.New()
	require.NoError(t, err)

	_, err = r.Checklist(context.Background(), nil, reconcile.Split)
	assert.True(t, pkgerrors.IsValidationError(err))

	_, err = r.Checklist(context.Background(), romset.NewCatalog(), reconcile.SetType("hybrid"))
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestChecklistCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := reconcile.New()
	require.NoError(t, err)

	_, err = r.Checklist(ctx, romset.NewCatalog(), reconcile.Split)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultSummary(t *testing.T) {
	cat := buildCatalog(t,
		testSet("mslug", "", map[string]string{"p1.rom": digA}),
		testSet("mslugx", "mslug", map[string]string{"px.rom": digB}),
	)

	result := checklist(t, cat, reconcile.Merged)

	assert.False(t, result.HasWarnings())
	assert.Contains(t, result.Summary(), "2 sets in")
	assert.Contains(t, result.Summary(), "1 sets out")
	assert.Contains(t, result.Summary(), "1 clones absorbed")
	assert.False(t, result.Metadata.EndTime.IsZero())
}
