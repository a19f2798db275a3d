// SPDX-License-Identifier: MPL-2.0

package record

import (
	"strings"

	"github.com/gamo/vocab/pkg/vocab"
)

// Word is one parsed, non-empty line of a data file.
type Word struct {
	// Line is the 1-based position of the line in the source file.
	Line int
	// Word is the trimmed line text. Never empty.
	Word string
	// Type is the category of the file the word was read from.
	Type vocab.TypeName
	// Folder is the folder containing that file.
	Folder vocab.FolderName
}

// ParseWords parses data file content into word records tagged with folder and typ.
// Empty lines are skipped without renumbering the lines that follow them.
func ParseWords(content string, folder vocab.FolderName, typ vocab.TypeName) []Word {
	var words []Word
	for i, raw := range splitLines(content) {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Line:   i + 1,
			Word:   text,
			Type:   typ,
			Folder: folder,
		})
	}
	return words
}

// splitLines splits on "\n" only. A trailing "\r" is removed later by trimming.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
