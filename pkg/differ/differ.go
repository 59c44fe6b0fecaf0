package differ

import (
	"sort"

	"github.com/romweave/romcheck/pkg/romset"
)

// Differ handles change detection between catalogs.
type Differ interface {
	// Catalogs compares two catalogs and returns the changes that turn
	// existing into updated.
	Catalogs(existing, updated *romset.Catalog) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreFields map[string]bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreFields: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Catalogs compares two complete catalogs.
func (d *differ) Catalogs(existing, updated *romset.Catalog) *Changeset {
	changeset := &Changeset{}

	// Find added and updated sets
	updated.ForEach(func(name string, newSet *romset.Set) bool {
		oldSet, ok := existing.Get(name)
		if !ok {
			changeset.Added = append(changeset.Added, newSet)
			return true
		}
		if update := d.set(oldSet, newSet); update != nil {
			changeset.Updated = append(changeset.Updated, *update)
		}
		return true
	})

	// Find removed sets
	existing.ForEach(func(name string, oldSet *romset.Set) bool {
		if !updated.Exists(name) {
			changeset.Removed = append(changeset.Removed, oldSet)
		}
		return true
	})

	// Sort for consistent output
	sortChangeset(changeset)

	changeset.Summary = calculateSummary(changeset)

	return changeset
}

// set compares two definitions of the same set and returns an update if
// they differ.
func (d *differ) set(existing, updated *romset.Set) *SetUpdate {
	var changes []FieldChange

	if existing.CloneOf != updated.CloneOf && !d.ignoreFields["cloneof"] {
		changes = append(changes, FieldChange{
			Path:     "cloneof",
			OldValue: existing.CloneOf,
			NewValue: updated.CloneOf,
			Type:     ChangeTypeUpdate,
		})
	}

	if existing.RomOf != updated.RomOf && !d.ignoreFields["romof"] {
		changes = append(changes, FieldChange{
			Path:     "romof",
			OldValue: existing.RomOf,
			NewValue: updated.RomOf,
			Type:     ChangeTypeUpdate,
		})
	}

	if existing.IsBIOS != updated.IsBIOS && !d.ignoreFields["isbios"] {
		changes = append(changes, FieldChange{
			Path:     "isbios",
			OldValue: boolString(existing.IsBIOS),
			NewValue: boolString(updated.IsBIOS),
			Type:     ChangeTypeUpdate,
		})
	}

	if !d.ignoreFields["roms"] {
		changes = append(changes, diffMembers(existing.ROMs, updated.ROMs)...)
	}

	// If no changes, return nil
	if len(changes) == 0 {
		return nil
	}

	return &SetUpdate{
		Name:    existing.Name,
		Changes: changes,
	}
}

// diffMembers compares the expected members of two set definitions.
func diffMembers(existing, updated romset.DigestMap) []FieldChange {
	var changes []FieldChange

	names := make(map[string]bool, len(existing)+len(updated))
	for name := range existing {
		names[name] = true
	}
	for name := range updated {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		oldDigest, inOld := existing[name]
		newDigest, inNew := updated[name]

		switch {
		case !inOld:
			changes = append(changes, FieldChange{
				Path:     "roms." + name,
				NewValue: newDigest.String(),
				Type:     ChangeTypeAdd,
			})
		case !inNew:
			changes = append(changes, FieldChange{
				Path:     "roms." + name,
				OldValue: oldDigest.String(),
				Type:     ChangeTypeRemove,
			})
		case !oldDigest.Equal(newDigest):
			changes = append(changes, FieldChange{
				Path:     "roms." + name,
				OldValue: oldDigest.String(),
				NewValue: newDigest.String(),
				Type:     ChangeTypeUpdate,
			})
		}
	}

	return changes
}

// sortChangeset sorts all slices in the changeset by set name.
func sortChangeset(changeset *Changeset) {
	sort.Slice(changeset.Added, func(i, j int) bool {
		return changeset.Added[i].Name < changeset.Added[j].Name
	})
	sort.Slice(changeset.Updated, func(i, j int) bool {
		return changeset.Updated[i].Name < changeset.Updated[j].Name
	})
	sort.Slice(changeset.Removed, func(i, j int) bool {
		return changeset.Removed[i].Name < changeset.Removed[j].Name
	})
}

func boolString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
