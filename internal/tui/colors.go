package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim renders text faint
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Faint(true).
		Render(text)
}

// ColorCommand styles a rendered command line
func ColorCommand(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// KeyValue is one row in a rendered section
type KeyValue struct {
	Key   string
	Value string
}

// RenderSection renders a titled block of aligned key/value rows.
// Empty values are shown as a faint dash.
func RenderSection(title string, rows []KeyValue) string {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Key); w > width {
			width = w
		}
	}

	keyStyle := lipgloss.NewStyle().Width(width + 2)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Underline(true).Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		value := r.Value
		if value == "" {
			value = ColorDim("-")
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(r.Key), value))
	}
	return b.String()
}
