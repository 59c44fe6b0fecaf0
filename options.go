package romcheck

import (
	"github.com/rs/zerolog"

	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/reconcile"
	"github.com/romweave/romcheck/pkg/romset"
	"github.com/romweave/romcheck/pkg/verify"
)

// config holds the assembled configuration for a Checker.
type config struct {
	datFile string
	catalog *romset.Catalog

	romDir string
	store  verify.Store

	setType  reconcile.SetType
	strict   bool
	progress verify.ProgressFunc
	logger   *zerolog.Logger
}

// defaultConfig returns the default Checker configuration.
func defaultConfig() *config {
	return &config{
		setType: reconcile.Split,
	}
}

// newConfig builds and validates a config from the given options.
func newConfig(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks that exactly one catalog source and exactly one store
// source are configured.
func (c *config) validate() error {
	catalogSources := 0
	if c.datFile != "" {
		catalogSources++
	}
	if c.catalog != nil {
		catalogSources++
	}
	if catalogSources != 1 {
		return &errors.ValidationError{
			Field:   "catalog source",
			Message: "exactly one of WithDATFile or WithCatalog is required",
		}
	}

	storeSources := 0
	if c.romDir != "" {
		storeSources++
	}
	if c.store != nil {
		storeSources++
	}
	if storeSources != 1 {
		return &errors.ValidationError{
			Field:   "store source",
			Message: "exactly one of WithROMDir or WithStore is required",
		}
	}

	return nil
}

// Option configures a Checker.
type Option func(*config) error

// WithDATFile loads the catalog from a DAT file on disk. The file may be
// in clrmamepro or listxml dialect.
func WithDATFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "dat file",
				Message: "cannot be empty",
			}
		}
		c.datFile = path
		return nil
	}
}

// WithCatalog uses an already loaded catalog. The checker keeps its own
// deep copy, so later changes to cat are not observed.
func WithCatalog(cat *romset.Catalog) Option {
	return func(c *config) error {
		if cat == nil {
			return &errors.ValidationError{
				Field:   "catalog",
				Message: "cannot be nil",
			}
		}
		c.catalog = cat
		return nil
	}
}

// WithROMDir reads set archives from a flat directory of zip files, one
// per set.
func WithROMDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "rom dir",
				Message: "cannot be empty",
			}
		}
		c.romDir = dir
		return nil
	}
}

// WithStore uses a custom archive store in place of a ROM directory.
func WithStore(store verify.Store) Option {
	return func(c *config) error {
		if store == nil {
			return &errors.ValidationError{
				Field:   "store",
				Message: "cannot be nil",
			}
		}
		c.store = store
		return nil
	}
}

// WithSetType sets the layout convention checklists are derived for.
// The default is split.
func WithSetType(st reconcile.SetType) Option {
	return func(c *config) error {
		if !st.Valid() {
			return &errors.ValidationError{
				Field:   "set type",
				Value:   st.String(),
				Message: "must be one of merged, split, nonmerged",
			}
		}
		c.setType = st
		return nil
	}
}

// WithStrict makes members on disk that the checklist does not expect
// count as discrepancies.
func WithStrict(strict bool) Option {
	return func(c *config) error {
		c.strict = strict
		return nil
	}
}

// WithProgress sets a callback invoked once per verified set.
func WithProgress(fn verify.ProgressFunc) Option {
	return func(c *config) error {
		c.progress = fn
		return nil
	}
}

// WithLogger sets the logger for the whole pipeline. When unset, the
// pipeline uses whatever logger the context carries.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
