package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "aba",
		Short:   "Generate ABA direct-entry files from CSV exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newGenerateCommand(),
		newValidateCommand(),
		newCodesCommand(),
		newHistoryCommand(),
	)

	return rootCmd
}
