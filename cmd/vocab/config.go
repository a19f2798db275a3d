// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gamo/vocab/internal/config"
	"github.com/gamo/vocab/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `vocab config` command tree. Its subcommands
// must work while the settings file is broken, so they skip the root's
// settings loading.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vocab configuration",
		Long: `Manage vocab configuration.

Configuration is read from the first file found:
  - the --config flag
  - Linux: ~/.config/vocab/config.cue
  - macOS: ~/Library/Application Support/vocab/config.cue
  - Windows: %APPDATA%\vocab\config.cue
  - ./vocab.cue

VOCAB_* environment variables (also read from ./.env) override file values,
e.g. VOCAB_STORE_NAME or VOCAB_RENAME_OVERWRITE.`,
		PersistentPreRunE: app.runE(func(_ *cobra.Command, _ []string) error {
			workDir, err := app.resolveWorkDir()
			if err != nil {
				return err
			}
			app.workDir = workDir
			installLogger(app.stderr, app.verbose)
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.showConfig(cmd.Context())
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.showConfigPath(cmd.Context())
		}),
	})

	var initDir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(_ *cobra.Command, _ []string) error {
			return app.initConfig(initDir)
		}),
	}
	initCmd.Flags().StringVar(&initDir, "dir", "", "directory to create config.cue in (default is the user config directory)")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.loadSettings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		}),
	})

	return cfgCmd
}

// loadSettings loads the settings for the current flags.
func (a *App) loadSettings(ctx context.Context) (*config.Config, string, error) {
	cfg, source, err := a.Config.LoadWithSource(ctx, config.LoadOptions{
		ConfigFilePath: a.configPath,
		WorkDir:        a.workDir,
	})
	if err != nil {
		if ae, ok := issue.AsActionable(err); ok && ae.Issue == 0 {
			ae.Issue = issue.ConfigLoadFailedId
		}
		return nil, "", err
	}
	return cfg, source, nil
}

func (a *App) showConfig(ctx context.Context) error {
	cfg, source, err := a.loadSettings(ctx)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := a.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)
	if source != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), source)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	rows := []struct {
		key   string
		value string
	}{
		{"store.name", cfg.Store.Name},
		{"store.extension", cfg.Store.Extension},
		{"manifest.dir", cfg.Manifest.Dir},
		{"rename.lenient", fmt.Sprintf("%v", cfg.Rename.Lenient)},
		{"rename.overwrite", cfg.Rename.Overwrite.String()},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
		{"ui.verbose", fmt.Sprintf("%v", cfg.UI.Verbose)},
		{"metrics.file", cfg.Metrics.File},
	}
	for _, r := range rows {
		value := valueStyle.Render(r.value)
		if r.value == "" {
			value = SubtitleStyle.Render("(not set)")
		}
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render(r.key), value)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Store"), a.resolve(cfg.Store.Name))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Manifest"), a.resolve(cfg.Manifest.Dir))
	return nil
}

func (a *App) showConfigPath(ctx context.Context) error {
	_, source, err := a.loadSettings(ctx)
	if err != nil {
		return err
	}
	if source != "" {
		fmt.Fprintln(a.stdout, source)
		return nil
	}

	fmt.Fprintln(a.stdout, SubtitleStyle.Render("(using defaults) searched:"))
	if dir, err := config.ConfigDir(); err == nil {
		fmt.Fprintf(a.stdout, "  %s\n", filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	}
	fmt.Fprintf(a.stdout, "  %s\n", filepath.Join(a.workDir, config.LocalConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func (a *App) initConfig(dir string) error {
	if dir == "" {
		cfgDir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		dir = cfgDir
	}
	path, err := config.CreateDefaultConfig(a.resolve(dir))
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(dir).
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	fmt.Fprintf(a.stdout, "%s %s\n", SuccessStyle.Render("Configuration file:"), path)
	return nil
}
