package normalizer

import "testing"

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	n := NewDefaultNormalizer()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello, World!", "hello world"},
		{"collapses whitespace", "a   b\t\nc", "a b c"},
		{"leading and trailing", "  spaced out  ", "spaced out"},
		{"all punctuation", "!!! ... ???", ""},
		{"empty", "", ""},
		{"digits kept", "version 2.0 rocks", "version 2 0 rocks"},
		{"mixed punctuation runs", "one--two__three", "one two three"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeNonASCIIPassThrough(t *testing.T) {
	n := NewDefaultNormalizer()

	// Non-ASCII characters are neither stripped nor case-folded.
	// "É" is not ASCII so it survives unfolded while the ASCII tail lowercases.
	if got := n.Normalize("Café ÉCLAIR"); got != "café Éclair" {
		t.Errorf("unexpected normalization of accented text: %q", got)
	}
	if got := n.Normalize("日本語のテスト。"); got != "日本語のテスト。" {
		t.Errorf("non-ASCII punctuation should pass through, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewDefaultNormalizer()

	inputs := []string{
		"Hello, World!",
		"  multiple   spaces  ",
		"already normalized text",
		"ÜBER-cool, right?!",
		"",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
