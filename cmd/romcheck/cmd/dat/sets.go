package dat

import (
	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/internal/cmd/format"
	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/romset"
)

// NewSetsCommand creates the dat sets subcommand.
func NewSetsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the sets a catalog describes",
		Long: `Sets lists every set in catalog order.

The --type filter narrows the list: parents (sets without a parent),
clones (sets with one), or bios (base units other sets build on).`,
		Example: `  romcheck dat sets --dat mame.dat
  romcheck dat sets --dat mame.dat --type clones
  romcheck dat sets --dat mame.dat -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, _, err := loadCatalog(cmd, app)
			if err != nil {
				return err
			}

			kind, _ := cmd.Flags().GetString("type")
			sets, err := filterSets(catalog, kind)
			if err != nil {
				return err
			}

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			return format.Sets(sets, flags)
		},
	}

	cmd.Flags().String("type", "all", "filter sets: all, parents, clones, bios")

	return cmd
}

// filterSets returns the catalog's sets in catalog order, narrowed by kind.
func filterSets(catalog *romset.Catalog, kind string) ([]*romset.Set, error) {
	keep := func(*romset.Set) bool { return true }
	switch kind {
	case "all", "":
	case "parents":
		keep = func(s *romset.Set) bool { return !s.IsClone() }
	case "clones":
		keep = func(s *romset.Set) bool { return s.IsClone() }
	case "bios":
		keep = func(s *romset.Set) bool { return s.IsBIOS }
	default:
		return nil, &errors.ValidationError{
			Field:   "type",
			Value:   kind,
			Message: "must be one of all, parents, clones, bios",
		}
	}

	var sets []*romset.Set
	catalog.ForEach(func(_ string, set *romset.Set) bool {
		if keep(set) {
			sets = append(sets, set)
		}
		return true
	})
	return sets, nil
}
