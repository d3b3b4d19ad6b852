package normalizer

import (
	"strings"
)

// DefaultNormalizer lowercases ASCII letters, replaces ASCII punctuation
// with spaces and collapses whitespace runs into single spaces.
// Non-ASCII runes pass through unchanged and are not case-folded, so
// token identity for non-English text is preserved byte for byte.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() *DefaultNormalizer {
	return &DefaultNormalizer{}
}

// Normalize returns the normalized form of text. The result has no
// leading or trailing whitespace and no consecutive spaces; empty and
// all-punctuation input yield the empty string. Normalize is idempotent.
func (n *DefaultNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case isASCIIPunct(r):
			sb.WriteRune(' ')
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// isASCIIPunct reports whether r is a graphic ASCII rune that is neither
// a letter nor a digit, matching the ASCII punctuation class.
func isASCIIPunct(r rune) bool {
	if r < '!' || r > '~' {
		return false
	}
	if r >= '0' && r <= '9' {
		return false
	}
	if r >= 'a' && r <= 'z' {
		return false
	}
	if r >= 'A' && r <= 'Z' {
		return false
	}
	return true
}
