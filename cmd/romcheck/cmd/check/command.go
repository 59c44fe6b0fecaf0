// Package check provides the command that verifies ROM archives against
// a DAT catalog.
package check

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/romweave/romcheck"
	"github.com/romweave/romcheck/internal/cmd/format"
	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/constants"
	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/reconcile"
	"github.com/romweave/romcheck/pkg/verify"
)

// AppContext defines the interface that the check command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Logger() *zerolog.Logger
	DATFile() string
	SetType() string
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] <rom-dir>",
		GroupID: "core",
		Short:   "Verify ROM archives against a DAT catalog",
		Long: `Check hashes every zip archive the catalog names in the given ROM
directory and compares the members against the expected checklist.

The checklist depends on the collection layout: a non-merged collection
keeps every set complete, a merged collection folds clones into their
parents, and a split collection keeps only the members a clone does not
share with its parent.

Discrepancies are findings, not failures: the command exits zero unless
the DAT file itself cannot be loaded.`,
		Example: `  romcheck check --dat mame.dat roms/                 # split layout (default)
  romcheck check --dat mame.dat --set-type merged roms/
  romcheck check --dat mame.dat --strict roms/        # also flag unexpected members
  romcheck check --dat mame.dat -o json roms/ > report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, args[0])
		},
	}

	cmd.Flags().StringP("dat", "d", "", "DAT file with the reference catalog")
	cmd.Flags().StringP("set-type", "t", "", "collection layout: merged, split, nonmerged (default from config or split)")
	cmd.Flags().Bool("strict", false, "report archive members the checklist does not expect")
	cmd.Flags().Bool("progress", false, "show progress even when stderr is not a terminal")
	cmd.Flags().Bool("no-progress", false, "disable the progress indicator")

	return cmd
}

// runCheck executes the load, reconcile, and verify pipeline.
func runCheck(cmd *cobra.Command, app AppContext, romDir string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	datPath, _ := cmd.Flags().GetString("dat")
	if datPath == "" {
		datPath = app.DATFile()
	}
	if datPath == "" {
		return &errors.ValidationError{
			Field:   "dat",
			Message: "a DAT file is required (--dat flag, config file, or ROMCHECK_DAT)",
		}
	}

	setTypeName, _ := cmd.Flags().GetString("set-type")
	if setTypeName == "" {
		setTypeName = app.SetType()
	}
	setType, err := reconcile.ParseSetType(setTypeName)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")

	opts := []romcheck.Option{
		romcheck.WithDATFile(datPath),
		romcheck.WithROMDir(romDir),
		romcheck.WithSetType(setType),
		romcheck.WithStrict(strict),
		romcheck.WithLogger(app.Logger()),
	}
	if fn := progressFunc(cmd, flags); fn != nil {
		opts = append(opts, romcheck.WithProgress(fn))
	}

	checker, err := romcheck.New(opts...)
	if err != nil {
		// Loading the catalog is the one fatal path.
		return err
	}

	report, err := checker.Check(cmd.Context())
	if err != nil {
		return err
	}

	if !flags.Quiet {
		fmt.Fprintln(os.Stderr, report.String())
	}

	return format.Report(report, flags)
}

// progressFunc decides whether to show progress and returns the callback,
// or nil when progress is off. Progress defaults to on for interactive
// runs and off for pipes.
func progressFunc(cmd *cobra.Command, flags *globals.Flags) verify.ProgressFunc {
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); noProgress {
		return nil
	}
	forced, _ := cmd.Flags().GetBool("progress")
	if !forced {
		if flags.Quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
			return nil
		}
	}
	return progressPrinter()
}

// progressPrinter returns a callback that redraws a counter on stderr.
// Updates are throttled so large catalogs do not flood the terminal.
func progressPrinter() verify.ProgressFunc {
	return func(done, total int) {
		if done%constants.ProgressInterval != 0 && done != total {
			return
		}
		fmt.Fprintf(os.Stderr, "\rChecking sets... %d/%d", done, total)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
