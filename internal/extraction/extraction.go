// Package extraction converts uploaded file bytes into plain text.
// Extraction never touches disk: every format is parsed from memory.
package extraction

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType identifies a supported upload format.
type FileType int

const (
	TypePDF FileType = iota
	TypeDOCX
	TypeTXT
	TypeMarkdown
)

// String returns the canonical extension name for the file type.
func (ft FileType) String() string {
	switch ft {
	case TypePDF:
		return "pdf"
	case TypeDOCX:
		return "docx"
	case TypeTXT:
		return "txt"
	case TypeMarkdown:
		return "md"
	default:
		return "unknown"
	}
}

// DetectFileType resolves a filename extension to a FileType,
// case-insensitively. The second return is false for unsupported
// extensions.
func DetectFileType(filename string) (FileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return TypePDF, true
	case "docx":
		return TypeDOCX, true
	case "txt":
		return TypeTXT, true
	case "md", "markdown":
		return TypeMarkdown, true
	default:
		return 0, false
	}
}

// ExtractText extracts the plain text of data according to fileType.
// The result is trimmed of leading and trailing whitespace.
func ExtractText(data []byte, fileType FileType) (string, error) {
	switch fileType {
	case TypePDF:
		return extractPDF(data)
	case TypeDOCX:
		return extractDOCX(data)
	case TypeTXT:
		return extractTXT(data)
	case TypeMarkdown:
		return extractMarkdown(data)
	default:
		return "", fmt.Errorf("unsupported file type %d", int(fileType))
	}
}
