// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/gamo/vocab/internal/config"
	"github.com/gamo/vocab/internal/issue"
	"github.com/gamo/vocab/internal/manifest"
	"github.com/gamo/vocab/internal/rename"
	"github.com/gamo/vocab/internal/store"
	"github.com/gamo/vocab/pkg/record"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"manifest missing", fmt.Errorf("load: %w", manifest.ErrConfigMissing), issue.ManifestMissingId},
		{"malformed line", &record.MalformedRenameLineError{Line: 2, Text: "nope", Reason: "missing from:"}, issue.MalformedRenameLineId},
		{"unreadable", fmt.Errorf("read: %w", record.ErrFileUnreadable), issue.FileUnreadableId},
		{"target missing", fmt.Errorf("plan: %w", rename.ErrTargetMissing), issue.RenameTargetMissingId},
		{"conflict", fmt.Errorf("plan: %w", rename.ErrConflict), issue.RenameConflictId},
		{"rename io beats permission", fmt.Errorf("%w: %w", rename.ErrIO, fs.ErrPermission), issue.RenameIoErrorId},
		{"store permission", fmt.Errorf("%w: %w", store.ErrIO, fs.ErrPermission), issue.PermissionDeniedId},
		{"store io", fmt.Errorf("%w: disk full", store.ErrIO), issue.StoreIoErrorId},
		{"config", &config.InvalidConfigError{FieldErrors: []error{errors.New("x")}}, issue.ConfigLoadFailedId},
		{"unknown", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActionable_AttachesIssueAndSuggestions(t *testing.T) {
	t.Parallel()

	err := actionable("load manifest", "config", fmt.Errorf("stat: %w", manifest.ErrConfigMissing))

	ae, ok := issue.AsActionable(err)
	if !ok {
		t.Fatalf("actionable() = %T, want *issue.ActionableError", err)
	}
	if ae.Issue != issue.ManifestMissingId {
		t.Errorf("Issue = %d, want %d", ae.Issue, issue.ManifestMissingId)
	}
	if len(ae.Suggestions) == 0 {
		t.Error("expected suggestions")
	}
	if !errors.Is(err, manifest.ErrConfigMissing) {
		t.Error("cause should stay reachable through errors.Is")
	}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: mutates package-level build variables.
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("dev version = %q", got)
	}

	Version, Commit, BuildDate = "v1.2.0", "abc123", "2026-01-02"
	if got, want := getVersionString(), "v1.2.0 (commit: abc123, built: 2026-01-02)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}

func TestRootCommand_ConfigFlagUsage(t *testing.T) {
	t.Parallel()

	flag := newRootCommand(NewApp(Dependencies{})).PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("missing --config flag")
	}
	if strings.Contains(flag.Usage, "$HOME") || !strings.Contains(flag.Usage, "user config directory") {
		t.Errorf("--config usage = %q, want the platform-neutral config directory", flag.Usage)
	}
}
