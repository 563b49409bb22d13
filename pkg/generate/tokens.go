// File: pkg/generate/tokens.go
package generate

import (
	"strings"
	"unicode"
)

// Stats accumulates the run summary. Counters only move when a file is
// written into the document successfully; error blocks contribute nothing.
type Stats struct {
	Files  int // Number of files included in the document.
	Lines  int // Total line count across included files.
	Tokens int // Estimated token count across included files.
}

// addFile folds one successfully processed file's content into the counters.
func (s *Stats) addFile(content string) {
	s.Files++
	s.Lines += strings.Count(content, "\n") + 1
	s.Tokens += estimateTokens(content)
}

// estimateTokens approximates a language-model token count: one token per
// whitespace-separated word, one per non-alphanumeric non-whitespace rune,
// plus a quarter of the word count for sub-word splits. It is a rough
// estimate, not a tokenizer.
func estimateTokens(content string) int {
	words := len(strings.Fields(content))

	special := 0
	for _, r := range content {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r) {
			special++
		}
	}

	return words + special + words/4
}
