// SPDX-License-Identifier: MPL-2.0

package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gamo/vocab/pkg/vocab"
)

const (
	// CommentMarker starts every line of the leading comment block.
	CommentMarker = "//"
	// FromKeyword prefixes the source name of an instruction.
	FromKeyword = "from:"
	// ToKeyword separates the source name from the destination name.
	ToKeyword = "to:"
)

// ErrMalformedRenameLine is the sentinel error wrapped by MalformedRenameLineError.
var ErrMalformedRenameLine = errors.New("malformed rename line")

type (
	// Change is one "from: <name> to: <name>" instruction.
	Change struct {
		From vocab.TypeName
		To   vocab.TypeName
		// Line is the 1-based line of the instruction in the script.
		Line int
	}

	// Script is a parsed rename script.
	Script struct {
		// Comments is the leading comment block, verbatim after trimming.
		Comments []string
		// Changes are the instructions in file order.
		Changes []Change
		// Skipped holds malformed lines dropped in lenient mode. Always empty in strict mode.
		Skipped []*MalformedRenameLineError
	}

	// MalformedRenameLineError reports a line that is neither part of the
	// leading comment block nor a valid instruction.
	MalformedRenameLineError struct {
		Line   int
		Text   string
		Reason string
	}

	// ParseOption configures rename script parsing.
	ParseOption func(*parseOptions)

	parseOptions struct {
		lenient bool
	}
)

// WithLenient makes ParseRenameScript skip malformed lines and report them in
// Script.Skipped instead of failing on the first one.
func WithLenient(lenient bool) ParseOption {
	return func(o *parseOptions) {
		o.lenient = lenient
	}
}

// Error implements the error interface.
func (e *MalformedRenameLineError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Reason)
}

// Unwrap returns ErrMalformedRenameLine for errors.Is() compatibility.
func (e *MalformedRenameLineError) Unwrap() error { return ErrMalformedRenameLine }

// CommentBlock returns the comment lines joined by "\n". This is the whole
// content of the script once its instructions have been applied.
func (s *Script) CommentBlock() string {
	return strings.Join(s.Comments, "\n")
}

// Remainder returns what the script keeps once its changes are applied: the
// comment block, followed by any lines skipped in lenient mode so they can be
// fixed by hand.
func (s *Script) Remainder() string {
	lines := make([]string, 0, len(s.Comments)+len(s.Skipped))
	lines = append(lines, s.Comments...)
	for _, skipped := range s.Skipped {
		lines = append(lines, skipped.Text)
	}
	return strings.Join(lines, "\n")
}

// HasChanges reports whether the script holds at least one instruction.
func (s *Script) HasChanges() bool {
	return len(s.Changes) > 0
}

// ParseRenameScript parses the content of a rename script.
//
// The maximal prefix of non-empty lines starting with CommentMarker is the
// comment block. Every later line must have the form "from: <a> to: <b>";
// a later line starting with CommentMarker is not a comment.
func ParseRenameScript(content string, opts ...ParseOption) (*Script, error) {
	options := parseOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	script := &Script{}
	inComments := true
	for i, raw := range splitLines(content) {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if inComments && strings.HasPrefix(text, CommentMarker) {
			script.Comments = append(script.Comments, text)
			continue
		}
		inComments = false

		change, err := parseChange(text, i+1)
		if err != nil {
			if !options.lenient {
				return nil, err
			}
			script.Skipped = append(script.Skipped, err)
			continue
		}
		script.Changes = append(script.Changes, change)
	}
	return script, nil
}

func parseChange(text string, line int) (Change, *MalformedRenameLineError) {
	malformed := func(reason string) *MalformedRenameLineError {
		return &MalformedRenameLineError{Line: line, Text: text, Reason: reason}
	}

	if len(text) < len(FromKeyword) || !strings.HasPrefix(text, FromKeyword) {
		return Change{}, malformed(fmt.Sprintf("expected %q prefix", FromKeyword))
	}
	before, after, found := strings.Cut(text[len(FromKeyword):], ToKeyword)
	if !found {
		return Change{}, malformed(fmt.Sprintf("missing %q separator", ToKeyword))
	}
	if strings.Contains(after, ToKeyword) || strings.Contains(before, FromKeyword) {
		return Change{}, malformed("keyword repeated")
	}

	from := vocab.TypeName(strings.TrimSpace(before))
	to := vocab.TypeName(strings.TrimSpace(after))
	if err := from.Validate(); err != nil {
		return Change{}, malformed("source: " + err.Error())
	}
	if err := to.Validate(); err != nil {
		return Change{}, malformed("destination: " + err.Error())
	}
	return Change{From: from, To: to, Line: line}, nil
}
