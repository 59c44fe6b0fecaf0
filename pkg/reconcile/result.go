package reconcile

import (
	"fmt"
	"time"

	"github.com/romweave/romcheck/pkg/romset"
)

// Result contains the outcome of deriving a checklist from a catalog.
type Result struct {
	// Catalog is the derived checklist. Sets appear in the input
	// catalog's order; absorbed clones are absent in merged mode.
	Catalog *romset.Catalog `json:"-"`

	// SetType is the convention the checklist was derived for.
	SetType SetType `json:"set_type"`

	// Warnings lists non-fatal oddities found while reconciling, in the
	// order they were encountered.
	Warnings []Warning `json:"warnings,omitempty"`

	// Metadata contains timing and statistics.
	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata contains timing and statistics for a reconciliation.
type ResultMetadata struct {
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	Duration  time.Duration    `json:"duration"`
	Stats     ResultStatistics `json:"stats"`
}

// ResultStatistics counts what the reconciliation did.
type ResultStatistics struct {
	// SetsIn is the number of sets in the input catalog.
	SetsIn int `json:"sets_in"`

	// SetsOut is the number of sets in the checklist.
	SetsOut int `json:"sets_out"`

	// SetsAbsorbed is the number of clones folded into a parent
	// (merged mode only).
	SetsAbsorbed int `json:"sets_absorbed,omitempty"`

	// MembersMerged is the number of members moved into a parent
	// (merged mode only).
	MembersMerged int `json:"members_merged,omitempty"`

	// MembersTrimmed is the number of members removed from clones
	// (split mode only).
	MembersTrimmed int `json:"members_trimmed,omitempty"`

	// DanglingParents counts sets whose parent is not in the catalog.
	DanglingParents int `json:"dangling_parents,omitempty"`

	// DigestConflicts counts members whose digest disagrees between a
	// clone and its parent.
	DigestConflicts int `json:"digest_conflicts,omitempty"`
}

// NewResult creates a result with the start time set.
func NewResult(st SetType) *Result {
	return &Result{
		SetType: st,
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// Finalize sets the end time, computes the duration, and records the
// final set count.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	if r.Catalog != nil {
		r.Metadata.Stats.SetsOut = r.Catalog.Len()
	}
}

// HasWarnings reports whether any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the reconciliation.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	summary := fmt.Sprintf("%s checklist: %d sets in, %d sets out", r.SetType, s.SetsIn, s.SetsOut)
	if s.SetsAbsorbed > 0 {
		summary += fmt.Sprintf(", %d clones absorbed", s.SetsAbsorbed)
	}
	if s.MembersTrimmed > 0 {
		summary += fmt.Sprintf(", %d members trimmed", s.MembersTrimmed)
	}
	if len(r.Warnings) > 0 {
		summary += fmt.Sprintf(", %d warnings", len(r.Warnings))
	}
	return summary
}

// warn records a warning and bumps the matching statistic.
func (r *Result) warn(w Warning) {
	r.Warnings = append(r.Warnings, w)
	switch w.Kind {
	case WarnDanglingParent:
		r.Metadata.Stats.DanglingParents++
	case WarnDigestConflict:
		r.Metadata.Stats.DigestConflicts++
	}
}
