package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX extracts paragraph text from a DOCX (Open XML) document.
// Paragraphs are joined with newlines, runs within a paragraph with
// spaces, mirroring the document's visual structure closely enough for
// sentence splitting.
func extractDOCX(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()

	var paragraphs []string
	for _, para := range strings.Split(content, "</w:p>") {
		text := strings.TrimSpace(textRuns(para))
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// textRuns pulls the contents of <w:t> elements out of raw document
// XML. Elements that merely share the prefix (like <w:tab/>) are
// skipped by requiring the tag to close immediately or carry
// attributes.
func textRuns(xml string) string {
	var sb strings.Builder
	parts := strings.Split(xml, "<w:t")
	for i, part := range parts {
		if i == 0 {
			continue
		}
		if part == "" || (part[0] != '>' && part[0] != ' ') {
			continue
		}
		open := strings.Index(part, ">")
		if open < 0 {
			continue
		}
		end := strings.Index(part, "</w:t>")
		if end < open {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(part[open+1 : end])
	}
	return sb.String()
}
