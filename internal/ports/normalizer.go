package ports

// Normalizer defines the interface for text normalization.
type Normalizer interface {
	Normalize(text string) string
}

// SentenceSplitter defines the interface for splitting raw text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}
