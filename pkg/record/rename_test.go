// SPDX-License-Identifier: MPL-2.0

package record

import (
	"errors"
	"testing"
)

func TestParseRenameScript_CommentsAndChange(t *testing.T) {
	t.Parallel()

	content := "// renamed old types\n// 2024-03 cleanup\nfrom: x to: y\n"
	script, err := ParseRenameScript(content)
	if err != nil {
		t.Fatalf("ParseRenameScript() error = %v", err)
	}

	if len(script.Comments) != 2 {
		t.Fatalf("Comments = %v, want 2 lines", script.Comments)
	}
	if script.CommentBlock() != "// renamed old types\n// 2024-03 cleanup" {
		t.Errorf("CommentBlock() = %q", script.CommentBlock())
	}
	if len(script.Changes) != 1 {
		t.Fatalf("Changes = %+v, want 1", script.Changes)
	}
	want := Change{From: "x", To: "y", Line: 3}
	if script.Changes[0] != want {
		t.Errorf("Changes[0] = %+v, want %+v", script.Changes[0], want)
	}
}

func TestParseRenameScript_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		wantChanges []Change
		wantComment int
	}{
		{"empty", "", nil, 0},
		{"comments only", "// a\n//b", nil, 2},
		{"no spaces", "from:a to:b", []Change{{From: "a", To: "b", Line: 1}}, 0},
		{"extra spaces", "from:   a    to:   b  ", []Change{{From: "a", To: "b", Line: 1}}, 0},
		{"blank lines between", "// c\n\n\nfrom: a to: b\n\nfrom: c to: d",
			[]Change{{From: "a", To: "b", Line: 4}, {From: "c", To: "d", Line: 6}}, 1},
		{"blank lines inside comment block", "// a\n\n// b\nfrom: x to: y",
			[]Change{{From: "x", To: "y", Line: 4}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			script, err := ParseRenameScript(tt.content)
			if err != nil {
				t.Fatalf("ParseRenameScript(%q) error = %v", tt.content, err)
			}
			if len(script.Comments) != tt.wantComment {
				t.Errorf("Comments = %v, want %d", script.Comments, tt.wantComment)
			}
			if len(script.Changes) != len(tt.wantChanges) {
				t.Fatalf("Changes = %+v, want %+v", script.Changes, tt.wantChanges)
			}
			for i := range tt.wantChanges {
				if script.Changes[i] != tt.wantChanges[i] {
					t.Errorf("Changes[%d] = %+v, want %+v", i, script.Changes[i], tt.wantChanges[i])
				}
			}
		})
	}
}

func TestParseRenameScript_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{"no pattern", "nope", 1},
		{"short line", "fr", 1},
		{"missing separator", "from: a b", 1},
		{"missing from keyword", "source: a to: b", 1},
		{"empty source", "from: to: b", 1},
		{"empty destination", "from: a to:", 1},
		{"path in destination", "from: a to: ../b", 1},
		{"second separator", "from: x to: y to: z", 1},
		{"second from keyword", "from: from: x to: y", 1},
		{"comment after instruction", "// ok\nfrom: a to: b\n// late", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			script, err := ParseRenameScript(tt.content)
			if err == nil {
				t.Fatalf("ParseRenameScript(%q) = %+v, want error", tt.content, script)
			}
			if !errors.Is(err, ErrMalformedRenameLine) {
				t.Errorf("error should wrap ErrMalformedRenameLine, got: %v", err)
			}
			var lineErr *MalformedRenameLineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error should be *MalformedRenameLineError, got: %T", err)
			}
			if lineErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", lineErr.Line, tt.wantLine)
			}
		})
	}
}

func TestParseRenameScript_Lenient(t *testing.T) {
	t.Parallel()

	content := "// log\nfrom: a to: b\nnope\nfrom: c to: d\nfrom: e"
	script, err := ParseRenameScript(content, WithLenient(true))
	if err != nil {
		t.Fatalf("ParseRenameScript() lenient error = %v", err)
	}
	if len(script.Changes) != 2 {
		t.Errorf("Changes = %+v, want 2", script.Changes)
	}
	if len(script.Skipped) != 2 {
		t.Fatalf("Skipped = %v, want 2", script.Skipped)
	}
	if script.Skipped[0].Line != 3 || script.Skipped[1].Line != 5 {
		t.Errorf("Skipped lines = %d, %d, want 3, 5", script.Skipped[0].Line, script.Skipped[1].Line)
	}
}

func TestScript_Remainder(t *testing.T) {
	t.Parallel()

	strict, err := ParseRenameScript("// one\n// two\nfrom: a to: b")
	if err != nil {
		t.Fatalf("ParseRenameScript() error = %v", err)
	}
	if got := strict.Remainder(); got != "// one\n// two" {
		t.Errorf("Remainder() = %q, want comment block only", got)
	}

	lenient, err := ParseRenameScript("// one\nfrom: a to: b\nbroken", WithLenient(true))
	if err != nil {
		t.Fatalf("ParseRenameScript() lenient error = %v", err)
	}
	if got := lenient.Remainder(); got != "// one\nbroken" {
		t.Errorf("Remainder() = %q, want comment block plus skipped line", got)
	}
}
