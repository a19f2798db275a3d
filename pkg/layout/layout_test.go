// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"path/filepath"
	"testing"

	"github.com/gamo/vocab/pkg/vocab"
)

func TestDerive_Order(t *testing.T) {
	t.Parallel()

	root := filepath.Join("srv", "vocabulary")
	carriers := Derive(root, []vocab.FolderName{"a", "b"}, []vocab.TypeName{"w", "v"}, vocab.DefaultExtension)

	got := Paths(carriers)
	want := []string{
		filepath.Join(root, "a", "w.on"),
		filepath.Join(root, "a", "v.on"),
		filepath.Join(root, "b", "w.on"),
		filepath.Join(root, "b", "v.on"),
	}
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewCarrier(t *testing.T) {
	t.Parallel()

	c := NewCarrier("/root", "nouns", []vocab.TypeName{"common"}, "txt")
	if c.Folder != "nouns" {
		t.Errorf("Folder = %q, want nouns", c.Folder)
	}
	if c.Dir != filepath.Join("/root", "nouns") {
		t.Errorf("Dir = %q", c.Dir)
	}
	if len(c.Files) != 1 {
		t.Fatalf("Files = %+v, want 1 entry", c.Files)
	}
	f := c.Files[0]
	if f.Type != "common" || f.Ext != "txt" || f.Name != "common.txt" {
		t.Errorf("file = %+v", f)
	}
	if f.Path != filepath.Join("/root", "nouns", "common.txt") {
		t.Errorf("Path = %q", f.Path)
	}
	if got := c.FilePath("rare", "txt"); got != filepath.Join("/root", "nouns", "rare.txt") {
		t.Errorf("FilePath(rare) = %q", got)
	}
}

func TestDerive_Empty(t *testing.T) {
	t.Parallel()

	if got := Derive("/r", nil, []vocab.TypeName{"t"}, "on"); len(got) != 0 {
		t.Errorf("Derive() with no folders = %+v, want empty", got)
	}
	carriers := Derive("/r", []vocab.FolderName{"f"}, nil, "on")
	if len(carriers) != 1 || len(carriers[0].Files) != 0 {
		t.Errorf("Derive() with no types = %+v, want one carrier without files", carriers)
	}
}
