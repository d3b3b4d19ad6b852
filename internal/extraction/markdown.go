package extraction

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown parses Markdown and collects the prose text of the
// document: the text content of every inline node, with block
// boundaries rendered as newlines so sentence splitting sees paragraph
// structure.
func extractMarkdown(data []byte) (string, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(data))

	var sb strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				sb.Write(t.Segment.Value(data))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteString(" ")
				}
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			sb.WriteString("\n")
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract Markdown: %w", err)
	}
	return strings.TrimSpace(sb.String()), nil
}
