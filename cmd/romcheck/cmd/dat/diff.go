package dat

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/internal/cmd/format"
	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/datfile"
	"github.com/romweave/romcheck/pkg/differ"
)

// NewDiffCommand creates the dat diff subcommand.
func NewDiffCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old.dat> <new.dat>",
		Short: "Compare two catalog versions",
		Long: `Diff compares two versions of a reference catalog and reports which
sets were added, removed, or changed between them. For changed sets the
output lists each field and member that differs, so you can see what a
catalog update will ask of your collection before running a check.`,
		Example: `  romcheck dat diff mame0277.dat mame0278.dat
  romcheck dat diff mame0277.dat mame0278.dat -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := datfile.Load(args[0])
			if err != nil {
				return err
			}
			updated, err := datfile.Load(args[1])
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("old", args[0]).
				Str("new", args[1]).
				Int("old_sets", existing.Len()).
				Int("new_sets", updated.Len()).
				Msg("Comparing catalogs")

			changeset := differ.New().Catalogs(existing, updated)

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			if !flags.Quiet {
				fmt.Fprintln(os.Stderr, changeset.String())
			}

			return format.Changeset(changeset, flags)
		},
	}
}
