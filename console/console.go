// Package console renders user-facing notices such as the offline template
// warning. Styling is applied only when the writer is a color terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Width is the width of a banner, including its border.
const Width = 73

// Level selects the banner color.
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

var levelColors = map[Level]lipgloss.AdaptiveColor{
	LevelWarning: {Light: "#B58900", Dark: "#FFD75F"},
	LevelError:   {Light: "#DC322F", Dark: "#FF5F5F"},
}

// Banner writes a boxed notice to w:
//
//	*************************************************************************
//	** WARNING: Unable to update template                                  **
//	*************************************************************************
//
//	    body text, indented
//
//	*************************************************************************
func Banner(w io.Writer, level Level, title, body string) error {
	renderer := lipgloss.NewRenderer(w)
	style := renderer.NewStyle().Bold(true).Foreground(levelColors[level])

	rule := strings.Repeat("*", Width)
	heading := "** " + title
	if pad := Width - len(heading) - 2; pad > 0 {
		heading += strings.Repeat(" ", pad)
	}
	heading += "**"

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Render(rule) + "\n")
	b.WriteString(style.Render(heading) + "\n")
	b.WriteString(style.Render(rule) + "\n\n")
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("\n" + style.Render(rule) + "\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	return nil
}
