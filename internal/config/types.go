// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OverwriteNever fails a rename onto any existing file.
	// Defined locally to avoid coupling config to internal/rename.
	OverwriteNever OverwritePolicy = "never"
	// OverwriteEmpty lets a rename replace an empty file only.
	OverwriteEmpty OverwritePolicy = "empty"
	// OverwriteAlways lets a rename replace any file.
	OverwriteAlways OverwritePolicy = "always"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOverwritePolicy is returned when an OverwritePolicy value is not recognized.
	ErrInvalidOverwritePolicy = errors.New("invalid overwrite policy")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// OverwritePolicy decides whether a rename may replace an existing destination.
	// The orchestrator casts it to rename.OverwritePolicy at the boundary.
	OverwritePolicy string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidOverwritePolicyError is returned when an OverwritePolicy value is not recognized.
	InvalidOverwritePolicyError struct {
		Value OverwritePolicy
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application settings.
	Config struct {
		// Store locates the vocabulary store
		Store StoreConfig `json:"store" mapstructure:"store"`
		// Manifest locates the folders, types and rename files
		Manifest ManifestConfig `json:"manifest" mapstructure:"manifest"`
		// Rename configures the rename engine
		Rename RenameConfig `json:"rename" mapstructure:"rename"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Metrics configures the metrics textfile
		Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
	}

	// StoreConfig locates the store directory.
	StoreConfig struct {
		// Name is the store directory relative to the working directory (default: "vocabulary").
		Name string `json:"name" mapstructure:"name"`
		// Extension is the data file extension (default: "on").
		Extension string `json:"extension" mapstructure:"extension"`
	}

	// ManifestConfig locates the manifest directory.
	ManifestConfig struct {
		// Dir is relative to the working directory unless absolute (default: "config").
		Dir string `json:"dir" mapstructure:"dir"`
	}

	// RenameConfig configures rename script handling.
	RenameConfig struct {
		// Lenient skips and reports malformed lines instead of failing (default: false).
		Lenient bool `json:"lenient" mapstructure:"lenient"`
		// Overwrite is the destination overwrite policy (default: "empty").
		Overwrite OverwritePolicy `json:"overwrite" mapstructure:"overwrite"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme for rendered help ("auto", "dark", "light")
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// MetricsConfig configures the Prometheus textfile.
	MetricsConfig struct {
		// File is written after each run when non-empty.
		File string `json:"file" mapstructure:"file"`
	}
)

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// GlamourStyle returns the glamour standard style name for the scheme.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the OverwritePolicy.
func (p OverwritePolicy) String() string { return string(p) }

// Validate returns an error if the OverwritePolicy is not recognized.
func (p OverwritePolicy) Validate() error {
	switch p {
	case OverwriteNever, OverwriteEmpty, OverwriteAlways:
		return nil
	default:
		return &InvalidOverwritePolicyError{Value: p}
	}
}

// Error implements the error interface.
func (e *InvalidOverwritePolicyError) Error() string {
	return fmt.Sprintf("invalid overwrite policy %q (valid: never, empty, always)", e.Value)
}

// Unwrap returns ErrInvalidOverwritePolicy so callers can use errors.Is for programmatic detection.
func (e *InvalidOverwritePolicyError) Unwrap() error { return ErrInvalidOverwritePolicy }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and each field's own sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks fields the schema cannot, such as values coming from
// environment overrides, which bypass CUE.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Store.Name) == "" {
		errs = append(errs, errors.New("store.name must be non-empty"))
	}
	if strings.TrimSpace(c.Store.Extension) == "" || strings.ContainsAny(c.Store.Extension, `./\`) {
		errs = append(errs, fmt.Errorf("store.extension %q must be a plain suffix", c.Store.Extension))
	}
	if strings.TrimSpace(c.Manifest.Dir) == "" {
		errs = append(errs, errors.New("manifest.dir must be non-empty"))
	}
	if err := c.Rename.Overwrite.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Name:      "vocabulary",
			Extension: "on",
		},
		Manifest: ManifestConfig{
			Dir: "config",
		},
		Rename: RenameConfig{
			Lenient:   false,
			Overwrite: OverwriteEmpty,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Metrics: MetricsConfig{
			File: "",
		},
	}
}
