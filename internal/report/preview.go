package report

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"

	"qat/internal/domain"
)

// Render returns the report as a Markdown string
func (mw *MarkdownWriter) Render(summaries []domain.FileSummary) (string, error) {
	var buf bytes.Buffer
	if err := mw.Write(&buf, summaries); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Preview renders Markdown for a terminal
func Preview(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
