package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// RenderMarkdown renders content for the terminal.
func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// RenderOrRaw renders content, falling back to the source on failure.
func RenderOrRaw(content string) string {
	out, err := RenderMarkdown(content)
	if err != nil {
		return content
	}
	return out
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}
