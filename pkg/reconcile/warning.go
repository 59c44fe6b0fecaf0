package reconcile

import (
	"fmt"

	"github.com/romweave/romcheck/pkg/romset"
)

// WarningKind identifies the kind of oddity a warning reports.
type WarningKind string

const (
	// WarnDanglingParent means a set names a parent that is not in the
	// catalog. The set is kept as-is.
	WarnDanglingParent WarningKind = "dangling_parent"

	// WarnDigestConflict means a clone and its parent expect different
	// digests for the same member name.
	WarnDigestConflict WarningKind = "digest_conflict"
)

// Warning describes a non-fatal oddity found while reconciling.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Set    string      `json:"set"`
	Parent string      `json:"parent,omitempty"`

	// ROM is set for digest conflicts.
	ROM string `json:"rom,omitempty"`

	// ParentDigest and CloneDigest are the two sides of a digest
	// conflict. The parent's digest is the one the checklist keeps.
	ParentDigest romset.Digest `json:"parent_digest,omitempty"`
	CloneDigest  romset.Digest `json:"clone_digest,omitempty"`
}

// String renders the warning for logs and reports.
func (w Warning) String() string {
	switch w.Kind {
	case WarnDanglingParent:
		return fmt.Sprintf("set %q references missing parent %q", w.Set, w.Parent)
	case WarnDigestConflict:
		return fmt.Sprintf("digest conflict on %q: parent %q expects %s, clone %q expects %s",
			w.ROM, w.Parent, w.ParentDigest, w.Set, w.CloneDigest)
	default:
		return fmt.Sprintf("%s: set %q", w.Kind, w.Set)
	}
}
