// Package reconcile derives verification checklists from ROM set catalogs.
//
// A DAT catalog describes every set in full. What should actually sit on
// disk depends on the layout convention the collection follows: merged
// collections fold clones into their parent archives, split collections
// keep only the delta in each clone archive, and nonmerged collections
// keep every archive complete. The Reconciler applies one of those
// conventions to a catalog and returns the derived checklist together
// with any oddities found along the way.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/logging"
	"github.com/romweave/romcheck/pkg/romset"
)

// Reconciler derives checklists from catalogs.
type Reconciler interface {
	// Checklist applies the layout convention st to cat and returns the
	// derived checklist. The input catalog is never modified.
	Checklist(ctx context.Context, cat *romset.Catalog, st SetType) (*Result, error)
}

// reconciler is the default Reconciler implementation.
type reconciler struct {
	opts *options
}

// New creates a reconciler with the given options.
func New(opts ...Option) (Reconciler, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{opts: o}, nil
}

// logger returns the configured logger, falling back to the context.
func (r *reconciler) logger(ctx context.Context) *zerolog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return logging.FromContext(ctx)
}

// Checklist applies the layout convention st to cat.
func (r *reconciler) Checklist(ctx context.Context, cat *romset.Catalog, st SetType) (*Result, error) {
	// Step 1: Validate inputs.
	if cat == nil {
		return nil, &errors.ValidationError{
			Field:   "catalog",
			Message: "cannot be nil",
		}
	}
	if !st.Valid() {
		return nil, &errors.ValidationError{
			Field:   "set type",
			Value:   st.String(),
			Message: "must be one of merged, split, nonmerged",
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := r.logger(ctx)
	result := NewResult(st)
	result.Metadata.Stats.SetsIn = cat.Len()

	logger.Debug().
		Str("set_type", st.String()).
		Int("sets", cat.Len()).
		Msg("Deriving checklist")

	// Step 2: Copy the catalog so reconciliation never touches the input.
	work := cat.Copy()

	// Step 3: Apply the layout convention.
	switch st {
	case Merged:
		work = r.merge(work, result, logger)
	case Split:
		r.split(cat, work, result, logger)
	case NonMerged:
		// Every archive is expected complete; the checklist is the catalog.
	}

	// Step 4: Finalize timing and counts.
	result.Catalog = work
	result.Finalize()

	logger.Debug().
		Str("set_type", st.String()).
		Int("sets_out", result.Metadata.Stats.SetsOut).
		Int("warnings", len(result.Warnings)).
		Dur("duration", result.Metadata.Duration).
		Msg("Checklist derived")

	return result, nil
}

// merge folds every clone's members into its parent and drops the clone
// from the checklist. BIOS sets stay complete even when they carry a
// parent reference, and chains of clone references collapse into the
// topmost ancestor so the outcome does not depend on catalog order.
func (r *reconciler) merge(work *romset.Catalog, result *Result, logger *zerolog.Logger) *romset.Catalog {
	absorbed := make(map[string]bool)

	for _, name := range work.Names() {
		set, _ := work.Get(name)
		if !set.IsClone() || set.IsBIOS {
			continue
		}

		parent, ok := mergeTarget(work, set)
		if !ok {
			result.warn(Warning{Kind: WarnDanglingParent, Set: name, Parent: set.CloneOf})
			logger.Warn().
				Str("set", name).
				Str("parent", set.CloneOf).
				Msg("Parent not in catalog, keeping set unmerged")
			continue
		}

		if parent.ROMs == nil {
			parent.ROMs = make(romset.DigestMap)
		}
		for _, romName := range set.ROMs.Names() {
			digest := set.ROMs[romName]
			existing, exists := parent.ROMs[romName]
			switch {
			case !exists:
				parent.ROMs[romName] = digest
				result.Metadata.Stats.MembersMerged++
			case existing.IsZero() && !digest.IsZero():
				// Fill in a digest the parent lacks.
				parent.ROMs[romName] = digest
			case !existing.IsZero() && !digest.IsZero() && !existing.Equal(digest):
				// The parent's digest wins.
				result.warn(Warning{
					Kind:         WarnDigestConflict,
					Set:          name,
					Parent:       parent.Name,
					ROM:          romName,
					ParentDigest: existing,
					CloneDigest:  digest,
				})
				logger.Warn().
					Str("set", name).
					Str("parent", parent.Name).
					Str("rom", romName).
					Msg("Digest conflict, keeping parent digest")
			}
		}

		absorbed[name] = true
		result.Metadata.Stats.SetsAbsorbed++
	}

	if len(absorbed) == 0 {
		return work
	}

	out := romset.NewCatalog(romset.WithCapacity(work.Len() - len(absorbed)))
	for _, name := range work.Names() {
		if absorbed[name] {
			continue
		}
		set, _ := work.Get(name)
		_ = out.Set(set)
	}
	return out
}

// split trims from every clone the member names its parent already lists,
// leaving only the delta. Trimming always consults the parent's original
// members in the input catalog, not whatever an earlier trim left behind.
func (r *reconciler) split(src, work *romset.Catalog, result *Result, logger *zerolog.Logger) {
	for _, name := range work.Names() {
		set, _ := work.Get(name)
		if !set.IsClone() || set.IsBIOS {
			continue
		}

		parent, ok := src.Get(set.CloneOf)
		if !ok {
			result.warn(Warning{Kind: WarnDanglingParent, Set: name, Parent: set.CloneOf})
			logger.Warn().
				Str("set", name).
				Str("parent", set.CloneOf).
				Msg("Parent not in catalog, keeping set complete")
			continue
		}

		for _, romName := range set.ROMs.Names() {
			parentDigest, shared := parent.ROMs[romName]
			if !shared {
				continue
			}
			digest := set.ROMs[romName]
			if !parentDigest.IsZero() && !digest.IsZero() && !parentDigest.Equal(digest) {
				result.warn(Warning{
					Kind:         WarnDigestConflict,
					Set:          name,
					Parent:       parent.Name,
					ROM:          romName,
					ParentDigest: parentDigest,
					CloneDigest:  digest,
				})
				logger.Warn().
					Str("set", name).
					Str("parent", parent.Name).
					Str("rom", romName).
					Msg("Digest conflict, trimming member anyway")
			}
			delete(set.ROMs, romName)
			result.Metadata.Stats.MembersTrimmed++
		}
	}
}

// mergeTarget resolves the set a clone's members roll up into. The walk
// follows clone references upward until it reaches a root set or a BIOS
// set. Reports false when the walk leaves the catalog or loops.
func mergeTarget(cat *romset.Catalog, set *romset.Set) (*romset.Set, bool) {
	seen := map[string]bool{set.Name: true}
	name := set.CloneOf
	for {
		parent, ok := cat.Get(name)
		if !ok || seen[name] {
			return nil, false
		}
		if !parent.IsClone() || parent.IsBIOS {
			return parent, true
		}
		seen[name] = true
		name = parent.CloneOf
	}
}
