package format

import (
	"os"

	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/differ"
	"github.com/romweave/romcheck/pkg/romset"
	"github.com/romweave/romcheck/pkg/verify"
)

// Report handles the common pattern of writing a discrepancy report.
// Table output gets one row per problem; a clean report renders nothing
// so scripts can rely on empty stdout. Structured formats always carry
// the full report including the summary.
func Report(report *verify.Report, flags *globals.Flags) error {
	formatter := NewFormatter(Format(flags.Output))

	var data any
	switch Format(flags.Output) {
	case FormatTable, FormatWide, "":
		tableData := ReportToTableData(report, Format(flags.Output) == FormatWide)
		if len(tableData.Rows) == 0 {
			return nil
		}
		data = tableData
	default:
		data = report
	}

	return formatter.Format(os.Stdout, data)
}

// Sets handles the common pattern of writing catalog sets.
func Sets(sets []*romset.Set, flags *globals.Flags) error {
	formatter := NewFormatter(Format(flags.Output))

	var data any
	switch Format(flags.Output) {
	case FormatTable, FormatWide, "":
		data = SetsToTableData(sets, Format(flags.Output) == FormatWide)
	default:
		data = sets
	}

	return formatter.Format(os.Stdout, data)
}

// Changeset handles the common pattern of writing a catalog changeset.
// Table output gets one row per change; an empty changeset renders
// nothing so scripts can rely on empty stdout.
func Changeset(changeset *differ.Changeset, flags *globals.Flags) error {
	formatter := NewFormatter(Format(flags.Output))

	var data any
	switch Format(flags.Output) {
	case FormatTable, FormatWide, "":
		tableData := ChangesetToTableData(changeset, Format(flags.Output) == FormatWide)
		if len(tableData.Rows) == 0 {
			return nil
		}
		data = tableData
	default:
		data = changeset
	}

	return formatter.Format(os.Stdout, data)
}

// Digests handles the common pattern of writing archive member digests.
func Digests(digests romset.DigestMap, flags *globals.Flags) error {
	formatter := NewFormatter(Format(flags.Output))

	var data any
	switch Format(flags.Output) {
	case FormatTable, FormatWide, "":
		data = DigestsToTableData(digests)
	default:
		data = digests
	}

	return formatter.Format(os.Stdout, data)
}

// Any handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func Any(data any, flags *globals.Flags) error {
	formatter := NewFormatter(Format(flags.Output))
	return formatter.Format(os.Stdout, data)
}
