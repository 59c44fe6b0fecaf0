// Package differ provides change detection between two ROM set catalogs,
// typically successive releases of the same DAT file.
package differ

import (
	"fmt"
	"strings"

	"github.com/romweave/romcheck/pkg/romset"
)

// ChangeType represents the type of change.
type ChangeType string

const (
	// ChangeTypeAdd indicates an item was added.
	ChangeTypeAdd ChangeType = "add"
	// ChangeTypeUpdate indicates an item was updated.
	ChangeTypeUpdate ChangeType = "update"
	// ChangeTypeRemove indicates an item was removed.
	ChangeTypeRemove ChangeType = "remove"
)

// FieldChange represents a change to a specific field of a set. Member
// changes use a "roms." prefix on the path.
type FieldChange struct {
	Path     string     `json:"path"`
	OldValue string     `json:"old_value,omitempty"`
	NewValue string     `json:"new_value,omitempty"`
	Type     ChangeType `json:"type"`
}

// SetUpdate represents an update to a set present in both catalogs.
type SetUpdate struct {
	Name    string        `json:"name"`
	Changes []FieldChange `json:"changes"`
}

// Changeset represents all changes between two catalogs. The set slices
// reference the input catalogs' sets and are sorted by name.
type Changeset struct {
	Added   []*romset.Set `json:"added,omitempty"`
	Updated []SetUpdate   `json:"updated,omitempty"`
	Removed []*romset.Set `json:"removed,omitempty"`
	Summary Summary       `json:"summary"`
}

// Summary provides summary statistics for a changeset.
type Summary struct {
	SetsAdded    int `json:"sets_added"`
	SetsUpdated  int `json:"sets_updated"`
	SetsRemoved  int `json:"sets_removed"`
	TotalChanges int `json:"total_changes"`
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.TotalChanges > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return c.Summary.TotalChanges == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if c.Summary.SetsAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d added", c.Summary.SetsAdded))
	}
	if c.Summary.SetsUpdated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", c.Summary.SetsUpdated))
	}
	if c.Summary.SetsRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", c.Summary.SetsRemoved))
	}

	return fmt.Sprintf("Sets: %s (%d changes total)", strings.Join(parts, ", "), c.Summary.TotalChanges)
}

// calculateSummary computes the summary for a changeset.
func calculateSummary(c *Changeset) Summary {
	return Summary{
		SetsAdded:    len(c.Added),
		SetsUpdated:  len(c.Updated),
		SetsRemoved:  len(c.Removed),
		TotalChanges: len(c.Added) + len(c.Updated) + len(c.Removed),
	}
}
