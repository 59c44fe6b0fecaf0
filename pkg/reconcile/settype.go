package reconcile

import (
	"strings"

	"github.com/romweave/romcheck/pkg/errors"
)

// SetType selects the layout convention an archive collection follows.
type SetType string

const (
	// NonMerged expects every set archive to be complete on its own.
	NonMerged SetType = "nonmerged"

	// Merged expects parent archives to contain their clones' members;
	// clone archives are not expected to exist.
	Merged SetType = "merged"

	// Split expects clone archives to hold only the members their parent
	// does not already provide.
	Split SetType = "split"
)

// String returns the set type name.
func (t SetType) String() string {
	return string(t)
}

// Valid reports whether the set type is one of the known conventions.
func (t SetType) Valid() bool {
	switch t {
	case NonMerged, Merged, Split:
		return true
	}
	return false
}

// ParseSetType parses a set type name as given on the command line or in
// configuration. Unknown names return a ValidationError.
func ParseSetType(s string) (SetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nonmerged", "non-merged", "unmerged":
		return NonMerged, nil
	case "merged":
		return Merged, nil
	case "split":
		return Split, nil
	default:
		return "", &errors.ValidationError{
			Field:   "set-type",
			Value:   s,
			Message: "must be one of merged, split, nonmerged",
		}
	}
}
