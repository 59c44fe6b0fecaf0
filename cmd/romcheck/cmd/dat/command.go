// Package dat provides commands for inspecting DAT catalogs.
package dat

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/pkg/datfile"
	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/romset"
)

// AppContext defines the interface that dat commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Logger() *zerolog.Logger
	DATFile() string
}

// NewCommand creates the dat command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dat",
		GroupID: "core",
		Short:   "Inspect a DAT reference catalog",
		Long: `Dat inspects the reference catalog without touching any archives.

Available subcommands:
  info    - catalog statistics
  sets    - list the sets the catalog describes
  diff    - compare two catalog versions`,
		Example: `  romcheck dat info --dat mame.dat
  romcheck dat sets --dat mame.dat --type clones
  romcheck dat diff mame0277.dat mame0278.dat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.PersistentFlags().StringP("dat", "d", "", "DAT file with the reference catalog")

	// Add subcommands using the app context
	cmd.AddCommand(NewInfoCommand(app))
	cmd.AddCommand(NewSetsCommand(app))
	cmd.AddCommand(NewDiffCommand(app))

	return cmd
}

// loadCatalog resolves the DAT path from the flag or config and loads it.
func loadCatalog(cmd *cobra.Command, app AppContext) (*romset.Catalog, string, error) {
	datPath, _ := cmd.Flags().GetString("dat")
	if datPath == "" {
		datPath = app.DATFile()
	}
	if datPath == "" {
		return nil, "", &errors.ValidationError{
			Field:   "dat",
			Message: "a DAT file is required (--dat flag, config file, or ROMCHECK_DAT)",
		}
	}

	catalog, err := datfile.Load(datPath)
	if err != nil {
		return nil, "", err
	}
	return catalog, datPath, nil
}
