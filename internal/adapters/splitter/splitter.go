// Package splitter turns extracted document text into the ordered
// sentence lists consumed by the sentence-level pipeline.
package splitter

import (
	"regexp"
	"strings"
)

// Sentence boundaries are . ! or ? followed by whitespace or the end of
// the text. Abbreviations ("Mr. Smith") split too; that trade-off is
// accepted, the pipeline only needs consistent boundaries.
var sentenceEnd = regexp.MustCompile(`[.!?](\s+|$)`)

// RegexSplitter splits text into trimmed, non-empty sentences with the
// terminating punctuation kept on each sentence.
type RegexSplitter struct{}

// NewRegexSplitter creates a new regex-based sentence splitter.
func NewRegexSplitter() *RegexSplitter {
	return &RegexSplitter{}
}

// Split returns the ordered sentences of text. Trailing text without a
// terminator counts as a final sentence; blank input yields nil.
func (s *RegexSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation mark; keep it with its sentence.
		sentence := strings.TrimSpace(text[last : loc[0]+1])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		last = loc[1]
	}

	if last < len(text) {
		if tail := strings.TrimSpace(text[last:]); tail != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}
