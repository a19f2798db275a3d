// SPDX-License-Identifier: MPL-2.0

package snapshot

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gamo/vocab/pkg/record"
)

type words []record.Word

func (w words) Flatten() []record.Word { return slices.Clone(w) }

func TestExport_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "vocab.db")
	src := words{
		{Folder: "a", Type: "noun", Line: 1, Word: "casa"},
		{Folder: "a", Type: "noun", Line: 3, Word: "perro"},
		{Folder: "b", Type: "verb", Line: 1, Word: "comer"},
		{Folder: "b", Type: "verb", Line: 2, Word: "casa"},
	}

	n, err := Export(context.Background(), path, src)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if n != len(src) {
		t.Errorf("Export() = %d rows, want %d", n, len(src))
	}

	got, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !slices.Equal(got, []record.Word(src)) {
		t.Errorf("Read() = %+v, want %+v", got, src)
	}
}

func TestExport_ReplacesPreviousRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.db")
	ctx := context.Background()

	if _, err := Export(ctx, path, words{{Folder: "a", Type: "noun", Line: 1, Word: "old"}}); err != nil {
		t.Fatalf("first Export() error: %v", err)
	}
	next := words{{Folder: "a", Type: "noun", Line: 1, Word: "new"}}
	if _, err := Export(ctx, path, next); err != nil {
		t.Fatalf("second Export() error: %v", err)
	}

	got, err := Read(ctx, path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !slices.Equal(got, []record.Word(next)) {
		t.Errorf("Read() = %+v, want only the latest export", got)
	}
}

func TestExport_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab.db")
	n, err := Export(context.Background(), path, words{})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if n != 0 {
		t.Errorf("Export() = %d, want 0", n)
	}
	got, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %+v, want empty", got)
	}
}

func TestExport_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Export(ctx, filepath.Join(t.TempDir(), "vocab.db"), words{{Folder: "a", Type: "n", Line: 1, Word: "x"}})
	if err == nil {
		t.Error("Export() should fail on a canceled context")
	}
}
