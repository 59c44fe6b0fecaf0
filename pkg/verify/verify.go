// Package verify compares a checklist against the archives a store
// actually holds and reports every discrepancy it finds.
//
// Verification is read-only and single-threaded: sets are checked one at
// a time in catalog order, so two runs over the same inputs produce
// identical reports. Discrepancies are data, not errors; a run fails
// only when its input is invalid or the context is canceled.
package verify

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/logging"
	"github.com/romweave/romcheck/pkg/romset"
)

// Verifier checks catalogs against a store.
type Verifier interface {
	// Verify checks every set in cat against the store and returns the
	// discrepancy report.
	Verify(ctx context.Context, cat *romset.Catalog) (*Report, error)
}

// verifier is the default Verifier implementation.
type verifier struct {
	store Store
	opts  *options
}

// New creates a verifier that reads archives from store.
func New(store Store, opts ...Option) (Verifier, error) {
	if store == nil {
		return nil, &errors.ValidationError{
			Field:   "store",
			Message: "cannot be nil",
		}
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &verifier{store: store, opts: o}, nil
}

// logger returns the configured logger, falling back to the context.
func (v *verifier) logger(ctx context.Context) *zerolog.Logger {
	if v.opts.logger != nil {
		return v.opts.logger
	}
	return logging.FromContext(ctx)
}

// Verify checks every set in cat against the store.
func (v *verifier) Verify(ctx context.Context, cat *romset.Catalog) (*Report, error) {
	// Step 1: Validate inputs.
	if cat == nil {
		return nil, &errors.ValidationError{
			Field:   "catalog",
			Message: "cannot be nil",
		}
	}

	logger := v.logger(ctx)
	report := NewReport()
	report.Strict = v.opts.strict

	names := cat.Names()
	total := len(names)
	report.Summary.SetsTotal = total

	logger.Debug().
		Int("sets", total).
		Bool("strict", v.opts.strict).
		Msg("Verifying sets")

	// Step 2: Check each set in catalog order.
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		set, _ := cat.Get(name)
		if err := v.check(ctx, set, report, logger); err != nil {
			return nil, err
		}

		if v.opts.progress != nil {
			v.opts.progress(i+1, total)
		}
	}

	// Step 3: Compute the summary.
	report.Finalize()

	logger.Debug().
		Int("sets_missing", report.Summary.SetsMissing).
		Int("sets_bad", report.Summary.SetsBad).
		Dur("duration", report.Summary.Duration).
		Msg("Verification finished")

	return report, nil
}

// check compares one set's checklist against its archive.
func (v *verifier) check(ctx context.Context, set *romset.Set, report *Report, logger *zerolog.Logger) error {
	got, err := v.store.Digests(ctx, set.Name)
	if err != nil {
		switch {
		case errors.IsNotFound(err):
			// An absent archive only matters when members are expected.
			if len(set.ROMs) > 0 {
				report.MissingSets = append(report.MissingSets, set.Name)
				logger.Debug().Str("set", set.Name).Msg("Archive missing")
			}
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			// Unreadable archives count as missing, with the detail kept.
			report.MissingSets = append(report.MissingSets, set.Name)
			if report.Unreadable == nil {
				report.Unreadable = make(map[string]string)
			}
			report.Unreadable[set.Name] = err.Error()
			logger.Warn().
				Err(err).
				Str("set", set.Name).
				Msg("Archive unreadable, counting as missing")
		}
		return nil
	}

	var missing []string
	var bad []BadROM
	for _, romName := range set.ROMs.Names() {
		want := set.ROMs[romName]
		if want.IsZero() {
			// The catalog has no digest for this member.
			continue
		}
		actual, ok := got[romName]
		if !ok {
			missing = append(missing, romName)
			continue
		}
		if !want.Equal(actual) {
			bad = append(bad, BadROM{Name: romName, Expected: want, Actual: actual})
		}
	}

	var extra []string
	if v.opts.strict {
		for name := range got {
			if _, expected := set.ROMs[name]; !expected {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
	}

	if len(missing) == 0 && len(bad) == 0 && len(extra) == 0 {
		return nil
	}

	report.BadSets = append(report.BadSets, set.Name)
	if len(missing) > 0 {
		if report.MissingROMs == nil {
			report.MissingROMs = make(map[string][]string)
		}
		report.MissingROMs[set.Name] = missing
	}
	if len(bad) > 0 {
		if report.BadROMs == nil {
			report.BadROMs = make(map[string][]BadROM)
		}
		report.BadROMs[set.Name] = bad
	}
	if len(extra) > 0 {
		if report.ExtraROMs == nil {
			report.ExtraROMs = make(map[string][]string)
		}
		report.ExtraROMs[set.Name] = extra
	}

	logger.Debug().
		Str("set", set.Name).
		Int("missing", len(missing)).
		Int("bad", len(bad)).
		Int("extra", len(extra)).
		Msg("Set has discrepancies")
	return nil
}
