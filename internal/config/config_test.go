// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gamo/vocab/internal/issue"
	"github.com/gamo/vocab/internal/testutil"
)

// isolated returns options that never see the real user config directory.
func isolated(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		ConfigDirPath: t.TempDir(),
		WorkDir:       t.TempDir(),
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Store.Name != "vocabulary" {
		t.Errorf("expected default store name to be vocabulary, got %s", cfg.Store.Name)
	}
	if cfg.Store.Extension != "on" {
		t.Errorf("expected default extension to be on, got %s", cfg.Store.Extension)
	}
	if cfg.Manifest.Dir != "config" {
		t.Errorf("expected default manifest dir to be config, got %s", cfg.Manifest.Dir)
	}
	if cfg.Rename.Lenient {
		t.Error("expected strict rename parsing by default")
	}
	if cfg.Rename.Overwrite != OverwriteEmpty {
		t.Errorf("expected default overwrite policy to be empty, got %s", cfg.Rename.Overwrite)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.Metrics.File != "" {
		t.Errorf("expected metrics to be disabled by default, got %q", cfg.Metrics.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is Linux-only")
	}

	testXDGPath := filepath.Join(t.TempDir(), "xdg")
	restoreXDG := testutil.MustSetenv(t, "XDG_CONFIG_HOME", testXDGPath)
	defer restoreXDG()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	expected := filepath.Join(testXDGPath, AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, source, err := NewProvider().LoadWithSource(context.Background(), isolated(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != "" {
		t.Errorf("source = %q, want defaults", source)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	opts := isolated(t)
	opts.ConfigFilePath = filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, opts.ConfigFilePath, `
store: name: "aparter/vocabulary"
rename: {
	lenient:   true
	overwrite: "never"
}
`)

	cfg, source, err := NewProvider().LoadWithSource(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != opts.ConfigFilePath {
		t.Errorf("source = %q, want %q", source, opts.ConfigFilePath)
	}
	if cfg.Store.Name != "aparter/vocabulary" {
		t.Errorf("Store.Name = %q", cfg.Store.Name)
	}
	if !cfg.Rename.Lenient || cfg.Rename.Overwrite != OverwriteNever {
		t.Errorf("Rename = %+v", cfg.Rename)
	}
	// Unset fields keep their defaults.
	if cfg.Store.Extension != "on" || cfg.Manifest.Dir != "config" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	opts := isolated(t)
	opts.ConfigFilePath = filepath.Join(t.TempDir(), "nope.cue")

	_, err := NewProvider().Load(context.Background(), opts)
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit file")
	}
	if _, ok := issue.AsActionable(err); !ok {
		t.Errorf("Load() error should be actionable, got %T", err)
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	opts := isolated(t)
	testutil.MustWriteFile(t, filepath.Join(opts.WorkDir, "vocab.cue"), `store: name: "local"`)

	cfg, source, err := NewProvider().LoadWithSource(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Name != "local" || !strings.HasSuffix(source, "vocab.cue") {
		t.Errorf("project file not used: name=%q source=%q", cfg.Store.Name, source)
	}

	userPath := filepath.Join(opts.ConfigDirPath, "config.cue")
	testutil.MustWriteFile(t, userPath, `store: name: "user"`)

	cfg, source, err = NewProvider().LoadWithSource(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Name != "user" || source != userPath {
		t.Errorf("user file should win: name=%q source=%q", cfg.Store.Name, source)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", `color: "red"`},
		{"bad overwrite policy", `rename: overwrite: "sometimes"`},
		{"extension with dot", `store: extension: "t.xt"`},
		{"empty store name", `store: name: ""`},
		{"syntax error", `store: {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolated(t)
			opts.ConfigFilePath = filepath.Join(t.TempDir(), "bad.cue")
			testutil.MustWriteFile(t, opts.ConfigFilePath, tt.content)

			_, err := NewProvider().Load(context.Background(), opts)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), opts.ConfigFilePath) {
				t.Errorf("error should name the file, got %v", err)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	opts := isolated(t)
	defer testutil.MustSetenv(t, "VOCAB_RENAME_OVERWRITE", "always")()
	defer testutil.MustSetenv(t, "VOCAB_RENAME_LENIENT", "true")()

	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Rename.Overwrite != OverwriteAlways || !cfg.Rename.Lenient {
		t.Errorf("Rename = %+v, want env overrides", cfg.Rename)
	}
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	opts := isolated(t)
	defer testutil.MustSetenv(t, "VOCAB_UI_COLOR_SCHEME", "neon")()

	_, err := NewProvider().Load(context.Background(), opts)
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Load() error = %v, want ErrInvalidColorScheme", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	opts := isolated(t)
	testutil.MustWriteFile(t, filepath.Join(opts.WorkDir, DotEnvFileName), "VOCAB_MANIFEST_DIR=manifest\n")
	t.Cleanup(func() { _ = os.Unsetenv("VOCAB_MANIFEST_DIR") })

	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Manifest.Dir != "manifest" {
		t.Errorf("Manifest.Dir = %q, want value from .env", cfg.Manifest.Dir)
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, isolated(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vocab")

	path, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error: %v", err)
	}
	testutil.AssertExists(t, path)

	opts := isolated(t)
	opts.ConfigFilePath = path
	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("generated config does not load: %v\n%s", err, testutil.MustReadFile(t, path))
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("round trip = %+v, want defaults", cfg)
	}

	// A second call keeps the existing file.
	testutil.MustWriteFile(t, path, `store: name: "kept"`)
	if _, err := CreateDefaultConfig(dir); err != nil {
		t.Fatalf("CreateDefaultConfig() second call error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != `store: name: "kept"` {
		t.Errorf("existing config overwritten: %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Store.Name = " "
	cfg.Store.Extension = "a/b"
	cfg.Rename.Overwrite = "maybe"

	err := cfg.Validate()
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want InvalidConfigError", err)
	}
	if len(invalid.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %v, want 3", invalid.FieldErrors)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("InvalidConfigError should unwrap to ErrInvalidConfig")
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	for scheme, want := range map[ColorScheme]string{
		ColorSchemeAuto:  "auto",
		ColorSchemeDark:  "dark",
		ColorSchemeLight: "light",
	} {
		if got := scheme.GlamourStyle(); got != want {
			t.Errorf("%s.GlamourStyle() = %q, want %q", scheme, got, want)
		}
	}
}
