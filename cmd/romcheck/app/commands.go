package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/romweave/romcheck/cmd/romcheck/cmd/check"
	"github.com/romweave/romcheck/cmd/romcheck/cmd/dat"
	"github.com/romweave/romcheck/cmd/romcheck/cmd/hash"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(check.NewCommand(a))
	rootCmd.AddCommand(dat.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(hash.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the romcheck CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("romcheck version %s\n", a.version)
			fmt.Printf("commit: %s\n", a.commit)
			fmt.Printf("built: %s\n", a.date)
			fmt.Printf("built by: %s\n", a.builtBy)
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
