package verify

import (
	"fmt"
	"strings"
	"time"

	"github.com/romweave/romcheck/pkg/romset"
)

// BadROM records a member whose content does not match the catalog.
type BadROM struct {
	Name     string        `json:"name"`
	Expected romset.Digest `json:"expected"`
	Actual   romset.Digest `json:"actual"`
}

// Report is the discrepancy report for one verification run. Set lists
// follow catalog order and member lists are name-sorted, so the same
// inputs always render the same report.
type Report struct {
	// SetType and Strict describe the run. SetType is filled by callers
	// that know which convention the checklist was derived for.
	SetType string `json:"set_type,omitempty"`
	Strict  bool   `json:"strict,omitempty"`

	// CheckedAt is when the run started.
	CheckedAt time.Time `json:"checked_at"`

	// MissingSets lists sets whose archive is absent (or unreadable)
	// while the checklist expects members.
	MissingSets []string `json:"missing_sets,omitempty"`

	// BadSets lists sets whose archive exists but has missing members,
	// wrong digests, or (in strict mode) unexpected members.
	BadSets []string `json:"bad_sets,omitempty"`

	// MissingROMs maps a bad set to the members its archive lacks.
	MissingROMs map[string][]string `json:"missing_roms,omitempty"`

	// BadROMs maps a bad set to the members whose digests do not match.
	BadROMs map[string][]BadROM `json:"bad_roms,omitempty"`

	// ExtraROMs maps a bad set to members on disk the checklist does not
	// expect. Only filled in strict mode.
	ExtraROMs map[string][]string `json:"extra_roms,omitempty"`

	// Unreadable maps a missing set to the read failure that put it
	// there.
	Unreadable map[string]string `json:"unreadable,omitempty"`

	// Warnings carries reconciliation warnings when the caller ran the
	// full pipeline. The verifier itself never fills it.
	Warnings []string `json:"warnings,omitempty"`

	// Summary contains the run totals, computed by Finalize.
	Summary Summary `json:"summary"`
}

// Summary contains the totals for a verification run.
type Summary struct {
	SetsTotal   int           `json:"sets_total"`
	SetsOK      int           `json:"sets_ok"`
	SetsMissing int           `json:"sets_missing"`
	SetsBad     int           `json:"sets_bad"`
	ROMsMissing int           `json:"roms_missing"`
	ROMsBad     int           `json:"roms_bad"`
	ROMsExtra   int           `json:"roms_extra,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// NewReport creates a report with the start time set.
func NewReport() *Report {
	return &Report{
		CheckedAt: time.Now(),
	}
}

// Clean reports whether the run found no discrepancies.
func (r *Report) Clean() bool {
	return len(r.MissingSets) == 0 && len(r.BadSets) == 0
}

// Finalize computes the summary from the recorded discrepancies. The
// verifier calls it once at the end of a run.
func (r *Report) Finalize() {
	r.Summary.SetsMissing = len(r.MissingSets)
	r.Summary.SetsBad = len(r.BadSets)
	r.Summary.SetsOK = r.Summary.SetsTotal - r.Summary.SetsMissing - r.Summary.SetsBad
	for _, roms := range r.MissingROMs {
		r.Summary.ROMsMissing += len(roms)
	}
	for _, roms := range r.BadROMs {
		r.Summary.ROMsBad += len(roms)
	}
	for _, roms := range r.ExtraROMs {
		r.Summary.ROMsExtra += len(roms)
	}
	r.Summary.Duration = time.Since(r.CheckedAt)
}

// String summarizes the finalized report in one line.
func (r *Report) String() string {
	if r.Clean() {
		return fmt.Sprintf("%d sets checked, all OK", r.Summary.SetsTotal)
	}

	var parts []string
	if r.Summary.SetsMissing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", r.Summary.SetsMissing))
	}
	if r.Summary.SetsBad > 0 {
		parts = append(parts, fmt.Sprintf("%d incomplete", r.Summary.SetsBad))
	}
	if r.Summary.ROMsMissing > 0 {
		parts = append(parts, fmt.Sprintf("%d members missing", r.Summary.ROMsMissing))
	}
	if r.Summary.ROMsBad > 0 {
		parts = append(parts, fmt.Sprintf("%d wrong digests", r.Summary.ROMsBad))
	}
	if r.Summary.ROMsExtra > 0 {
		parts = append(parts, fmt.Sprintf("%d unexpected members", r.Summary.ROMsExtra))
	}
	return fmt.Sprintf("%d sets checked: %s", r.Summary.SetsTotal, strings.Join(parts, ", "))
}
