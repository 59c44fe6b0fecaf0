package romcheck

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/romweave/romcheck/pkg/archive"
	"github.com/romweave/romcheck/pkg/datfile"
	"github.com/romweave/romcheck/pkg/logging"
	"github.com/romweave/romcheck/pkg/reconcile"
	"github.com/romweave/romcheck/pkg/romset"
	"github.com/romweave/romcheck/pkg/verify"
)

// checker is the default Checker implementation.
type checker struct {
	config  *config
	catalog *romset.Catalog
	store   verify.Store
}

// newChecker resolves the configured sources into a ready checker.
func newChecker(cfg *config) (*checker, error) {
	c := &checker{config: cfg}

	// Step 1: Resolve the catalog source. Loading the DAT is the only
	// fatal part of the pipeline.
	switch {
	case cfg.catalog != nil:
		c.catalog = cfg.catalog.Copy()
	default:
		cat, err := datfile.Load(cfg.datFile)
		if err != nil {
			return nil, err
		}
		c.catalog = cat
	}

	// Step 2: Resolve the store.
	switch {
	case cfg.store != nil:
		c.store = cfg.store
	default:
		c.store = archive.New(cfg.romDir)
	}

	return c, nil
}

// logger returns the configured logger, falling back to the context.
func (c *checker) logger(ctx context.Context) *zerolog.Logger {
	if c.config.logger != nil {
		return c.config.logger
	}
	return logging.FromContext(ctx)
}

// Check derives the checklist and verifies it against the store.
func (c *checker) Check(ctx context.Context) (*verify.Report, error) {
	logger := c.logger(ctx)

	// Step 1: Derive the checklist for the configured set type.
	result, err := c.Checklist(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn().Str("set", w.Set).Str("parent", w.Parent).Msg(w.String())
	}

	// Step 2: Verify the checklist against the store.
	v, err := verify.New(c.store,
		verify.WithStrict(c.config.strict),
		verify.WithProgress(c.config.progress),
		verify.WithLogger(c.config.logger),
	)
	if err != nil {
		return nil, err
	}

	report, err := v.Verify(ctx, result.Catalog)
	if err != nil {
		return nil, err
	}

	// Step 3: Attach run metadata the verifier does not know about.
	report.SetType = result.SetType.String()
	for _, w := range result.Warnings {
		report.Warnings = append(report.Warnings, w.String())
	}

	logger.Info().
		Str("set_type", report.SetType).
		Int("sets", report.Summary.SetsTotal).
		Int("sets_missing", report.Summary.SetsMissing).
		Int("sets_bad", report.Summary.SetsBad).
		Msg("Check finished")

	return report, nil
}

// Catalog returns a deep copy of the loaded catalog.
func (c *checker) Catalog() (*romset.Catalog, error) {
	return c.catalog.Copy(), nil
}

// Checklist derives the checklist for the configured set type.
func (c *checker) Checklist(ctx context.Context) (*reconcile.Result, error) {
	r, err := reconcile.New(reconcile.WithLogger(c.config.logger))
	if err != nil {
		return nil, err
	}
	return r.Checklist(ctx, c.catalog, c.config.setType)
}
