// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamo/vocab/internal/config"
	"github.com/gamo/vocab/internal/issue"
	"github.com/gamo/vocab/internal/manifest"
	"github.com/gamo/vocab/internal/store"
	"github.com/gamo/vocab/pkg/vocab"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and reaches settings
	// and output through it.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// Global flag values, bound by newRootCommand.
		configPath string
		workDir    string
		verbose    bool

		// Set by prepare before any RunE.
		cfg *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		LoadWithSource(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// session is the fully resolved input of one command: the manifest and
	// the store derived from it and the settings.
	session struct {
		manifest *manifest.Manifest
		store    *store.Store
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// prepare loads the settings and installs the logger. It runs once per
// invocation, before the selected command.
func (a *App) prepare(ctx context.Context) error {
	workDir, err := a.resolveWorkDir()
	if err != nil {
		return err
	}
	a.workDir = workDir

	cfg, source, err := a.loadSettings(ctx)
	if err != nil {
		installLogger(a.stderr, a.verbose)
		return err
	}

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	installLogger(a.stderr, a.verbose)

	a.cfg = cfg
	if source == "" {
		source = "defaults"
	}
	slog.Debug("settings loaded", "source", source, "workdir", workDir)
	return nil
}

func (a *App) resolveWorkDir() (string, error) {
	if a.workDir != "" {
		return filepath.Abs(a.workDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// resolve makes p absolute against the working directory.
func (a *App) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.workDir, p)
}

// openSession loads the manifest and derives the store. It performs no
// filesystem mutation.
func (a *App) openSession(ctx context.Context) (*session, error) {
	manifestDir := a.resolve(a.cfg.Manifest.Dir)
	ext := vocab.Extension(a.cfg.Store.Extension)

	m, err := manifest.Load(ctx, manifest.LoadOptions{
		Dir:       manifestDir,
		Extension: ext,
		Lenient:   a.cfg.Rename.Lenient,
	})
	if err != nil {
		return nil, actionable("load manifest", manifestDir, err)
	}
	for _, skipped := range m.Rename.Skipped {
		logSkipped(m.RenamePath, skipped)
	}

	s := store.New(store.Options{
		Root:      a.resolve(a.cfg.Store.Name),
		Folders:   m.Folders,
		Types:     m.Types,
		Extension: ext,
	})
	return &session{manifest: m, store: s}, nil
}

// glamourStyle is the help catalog style for the configured color scheme.
func (a *App) glamourStyle() string {
	if a.cfg == nil {
		return issue.AutoStyle
	}
	return a.cfg.UI.ColorScheme.GlamourStyle()
}
