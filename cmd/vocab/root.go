// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocab",
		Short: "A categorized, file-backed vocabulary store",
		Long: TitleStyle.Render("vocab") + SubtitleStyle.Render(" - A categorized, file-backed vocabulary store") + `

vocab keeps word lists in a folder x type grid of plain text files. The
manifest (config/folders.on, config/types.on) names the folders and types;
missing folders and data files are created on every run, existing ones are
never touched. config/rename.on holds rename instructions that are applied
once and then removed from the file, keeping its leading comments.

` + SubtitleStyle.Render("Examples:") + `
  vocab                     Run the whole pipeline and print the report
  vocab init --manifest     Create a starter manifest and the store layout
  vocab stats --by-folder   Count records per data file
  vocab rename --dry-run    Preview the pending renames
  vocab export --sqlite vocab.db
  vocab config show         Show current configuration`,
		Args: cobra.NoArgs,
		PersistentPreRunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.prepare(cmd.Context())
		}),
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd.Context())
		}),
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&app.configPath, "config", "", "config file (default is config.cue in the user config directory, see 'vocab config path', then ./vocab.cue)")
	pf.StringVarP(&app.workDir, "workdir", "C", "", "directory holding the manifest and the store (default is the current directory)")

	rootCmd.AddCommand(
		newRunCommand(app),
		newInitCommand(app),
		newStatsCommand(app),
		newWordsCommand(app),
		newRenameCommand(app),
		newExportCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. It is called by main.main().
func Execute() {
	rootCmd := newRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
