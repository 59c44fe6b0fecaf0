package dat

import (
	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/internal/cmd/format"
	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/romset"
)

// catalogInfo summarizes a loaded catalog for the info subcommand.
type catalogInfo struct {
	File            string `json:"file"`
	Sets            int    `json:"sets"`
	Clones          int    `json:"clones"`
	BIOSSets        int    `json:"bios_sets"`
	Parents         int    `json:"parents"`
	DanglingParents int    `json:"dangling_parents"`
	ROMs            int    `json:"roms"`
	Undigested      int    `json:"undigested"`
}

// NewInfoCommand creates the dat info subcommand.
func NewInfoCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show catalog statistics",
		Example: `  romcheck dat info --dat mame.dat
  romcheck dat info --dat mame.dat -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, path, err := loadCatalog(cmd, app)
			if err != nil {
				return err
			}

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			return format.Any(summarize(catalog, path), flags)
		},
	}
}

// summarize walks the catalog once and counts what the info table shows.
func summarize(catalog *romset.Catalog, path string) catalogInfo {
	info := catalogInfo{
		File: path,
		Sets: catalog.Len(),
	}

	parents := make(map[string]bool)
	catalog.ForEach(func(_ string, set *romset.Set) bool {
		if set.IsBIOS {
			info.BIOSSets++
		}
		if set.IsClone() {
			info.Clones++
			parents[set.CloneOf] = true
		}
		info.ROMs += len(set.ROMs)
		for _, digest := range set.ROMs {
			if digest.IsZero() {
				info.Undigested++
			}
		}
		return true
	})

	for parent := range parents {
		if catalog.Exists(parent) {
			info.Parents++
		} else {
			info.DanglingParents++
		}
	}

	return info
}
