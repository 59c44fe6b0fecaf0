// Package romcheck verifies ROM collections against DAT catalogs.
//
// A DAT file describes every set a collection should contain and the
// SHA-1 digest of each member file. romcheck loads that catalog, derives
// the checklist for the collection's layout convention (merged, split,
// or nonmerged), and compares it against the zip archives on disk:
//
//	checker, err := romcheck.New(
//		romcheck.WithDATFile("mame.dat"),
//		romcheck.WithROMDir("/roms"),
//		romcheck.WithSetType(reconcile.Split),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := checker.Check(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !report.Clean() {
//		fmt.Println(report)
//	}
//
// Discrepancies are data, never errors: missing archives, missing
// members, and wrong digests all land on the report, while Check itself
// fails only for invalid input or a canceled context. Only loading the
// catalog is fatal, and that happens in New.
package romcheck

import (
	"context"

	"github.com/romweave/romcheck/pkg/reconcile"
	"github.com/romweave/romcheck/pkg/romset"
	"github.com/romweave/romcheck/pkg/verify"
)

// Checker runs the load, reconcile, verify pipeline over one catalog
// and one archive store.
type Checker interface {
	// Check derives the checklist for the configured set type and
	// verifies it against the store. Each call runs the pipeline fresh.
	Check(ctx context.Context) (*verify.Report, error)

	// Catalog returns a deep copy of the loaded catalog, before any
	// reconciliation.
	Catalog() (*romset.Catalog, error)

	// Checklist derives the checklist for the configured set type
	// without verifying it.
	Checklist(ctx context.Context) (*reconcile.Result, error)
}

// New creates a Checker from the given options. Exactly one catalog
// source (WithDATFile or WithCatalog) and one store source (WithROMDir
// or WithStore) must be configured. The catalog is loaded eagerly, so a
// missing or malformed DAT file fails here rather than at Check time.
func New(opts ...Option) (Checker, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return newChecker(cfg)
}
