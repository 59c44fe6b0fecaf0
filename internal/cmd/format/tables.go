package format

import (
	"sort"
	"strconv"
	"strings"

	"github.com/romweave/romcheck/pkg/differ"
	"github.com/romweave/romcheck/pkg/romset"
	"github.com/romweave/romcheck/pkg/verify"
)

// shortDigestLen is how many hex characters of a SHA-1 the regular table
// shows. Wide output shows all 40.
const shortDigestLen = 12

// ReportToTableData flattens a discrepancy report into one row per
// problem, keeping the report's set order.
func ReportToTableData(report *verify.Report, wide bool) Data {
	headers := []string{"Set", "Problem", "Member", "Expected", "Actual"}

	var rows [][]string
	for _, name := range report.MissingSets {
		problem := "archive missing"
		if detail, ok := report.Unreadable[name]; ok {
			problem = "archive unreadable"
			if wide {
				problem += ": " + detail
			}
		}
		rows = append(rows, []string{name, problem, "-", "-", "-"})
	}

	for _, name := range report.BadSets {
		for _, member := range report.MissingROMs[name] {
			rows = append(rows, []string{name, "member missing", member, "-", "-"})
		}
		for _, bad := range report.BadROMs[name] {
			rows = append(rows, []string{
				name,
				"wrong digest",
				bad.Name,
				shortDigest(bad.Expected, wide),
				shortDigest(bad.Actual, wide),
			})
		}
		for _, member := range report.ExtraROMs[name] {
			rows = append(rows, []string{name, "unexpected member", member, "-", "-"})
		}
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// SetsToTableData converts catalog sets to table format.
func SetsToTableData(sets []*romset.Set, wide bool) Data {
	headers := []string{"Name", "Clone Of", "BIOS", "ROMs"}
	if wide {
		headers = []string{"Name", "Clone Of", "ROM Of", "BIOS", "ROMs"}
	}

	rows := make([][]string, 0, len(sets))
	for _, set := range sets {
		cloneOf := set.CloneOf
		if cloneOf == "" {
			cloneOf = "-"
		}
		bios := "-"
		if set.IsBIOS {
			bios = "yes"
		}

		row := []string{set.Name, cloneOf}
		if wide {
			romOf := set.RomOf
			if romOf == "" {
				romOf = "-"
			}
			row = append(row, romOf)
		}
		row = append(row, bios, strconv.Itoa(len(set.ROMs)))

		rows = append(rows, row)
	}

	alignment := make([]Align, len(headers))
	alignment[len(alignment)-1] = AlignRight

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// ChangesetToTableData flattens a catalog changeset into one row per
// change: added and removed sets first, then one row per field change
// on updated sets.
func ChangesetToTableData(changeset *differ.Changeset, wide bool) Data {
	headers := []string{"Set", "Change", "Field", "Old", "New"}

	var rows [][]string
	for _, set := range changeset.Added {
		rows = append(rows, []string{set.Name, "added", "-", "-", "-"})
	}
	for _, set := range changeset.Removed {
		rows = append(rows, []string{set.Name, "removed", "-", "-", "-"})
	}

	for _, update := range changeset.Updated {
		for _, change := range update.Changes {
			oldValue := change.OldValue
			newValue := change.NewValue
			if strings.HasPrefix(change.Path, "roms.") {
				oldValue = shortDigest(romset.Digest(oldValue), wide)
				newValue = shortDigest(romset.Digest(newValue), wide)
			}
			if oldValue == "" {
				oldValue = "-"
			}
			if newValue == "" {
				newValue = "-"
			}
			rows = append(rows, []string{
				update.Name,
				string(change.Type),
				change.Path,
				oldValue,
				newValue,
			})
		}
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// DigestsToTableData converts archive member digests to table format,
// sorted by member name.
func DigestsToTableData(digests romset.DigestMap) Data {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, digests[name].String()})
	}

	return Data{
		Headers: []string{"Member", "SHA-1"},
		Rows:    rows,
	}
}

// shortDigest renders a digest for table cells. Empty digests become a
// dash so the column stays readable.
func shortDigest(d romset.Digest, wide bool) string {
	s := d.String()
	if s == "" {
		return "-"
	}
	if !wide && len(s) > shortDigestLen {
		return s[:shortDigestLen] + "..."
	}
	return s
}
