package extraction

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// extractTXT decodes plain text, rejecting invalid UTF-8.
func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("failed to decode TXT as UTF-8")
	}
	return strings.TrimSpace(string(data)), nil
}
