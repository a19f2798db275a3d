// SPDX-License-Identifier: MPL-2.0

package record

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.on")
	binary := filepath.Join(dir, "binary.on")
	if err := os.WriteFile(good, []byte("palabra\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := ReadFile(good)
	if err != nil || content != "palabra\n" {
		t.Errorf("ReadFile(good) = %q, %v", content, err)
	}

	_, err = ReadFile(binary)
	if !errors.Is(err, ErrFileUnreadable) {
		t.Errorf("ReadFile(binary) error = %v, want ErrFileUnreadable", err)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.on"))
	if !errors.Is(err, ErrFileUnreadable) {
		t.Errorf("ReadFile(missing) error = %v, want ErrFileUnreadable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want it to wrap fs.ErrNotExist", err)
	}
	var unreadable *FileUnreadableError
	if !errors.As(err, &unreadable) || unreadable.Path == "" {
		t.Errorf("ReadFile(missing) error should be *FileUnreadableError with a path, got %T", err)
	}
}
