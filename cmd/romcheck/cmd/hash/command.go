// Package hash provides the command that digests zip archive members.
package hash

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/internal/cmd/format"
	"github.com/romweave/romcheck/internal/cmd/globals"
	"github.com/romweave/romcheck/pkg/archive"
	"github.com/romweave/romcheck/pkg/romset"
)

// AppContext defines the interface that the hash command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
}

// NewCommand creates the hash command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <zip>...",
		Short: "Show member SHA-1 digests of zip archives",
		Long: `Hash digests every member of the given zip archives the same way
the verifier does. Use it to see an archive exactly as a check run
would, when chasing a reported mismatch.`,
		Example: `  romcheck hash roms/pacman.zip
  romcheck hash roms/*.zip -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, app, args)
		},
	}
}

func runHash(cmd *cobra.Command, app AppContext, paths []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	digestsByFile := make(map[string]romset.DigestMap, len(paths))
	for _, path := range paths {
		digests, err := archive.ZipDigests(cmd.Context(), path)
		if err != nil {
			return err
		}
		digestsByFile[path] = digests

		app.Logger().Debug().
			Str("archive", path).
			Int("members", len(digests)).
			Msg("Hashed archive")
	}

	switch format.Format(flags.Output) {
	case format.FormatTable, format.FormatWide, "":
		for i, path := range paths {
			if len(paths) > 1 {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("%s:\n", path)
			}
			if err := format.Digests(digestsByFile[path], flags); err != nil {
				return err
			}
		}
		return nil
	default:
		if len(paths) == 1 {
			return format.Any(digestsByFile[paths[0]], flags)
		}
		return format.Any(digestsByFile, flags)
	}
}
