// Package ui renders agent progress and answers for a plain terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Notifier receives progress updates from the dispatch loop.
type Notifier interface {
	// WriteStatus reports a phase change ("thinking", "executing", "error")
	// with a short human-readable message.
	WriteStatus(phase, message string)
}

var (
	thinkingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	executingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// Console writes styled status lines to a terminal stream (normally stderr,
// keeping stdout clean for the final answer).
type Console struct {
	out io.Writer
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// WriteStatus implements Notifier.
func (c *Console) WriteStatus(phase, message string) {
	var style lipgloss.Style
	var icon string
	switch phase {
	case "thinking":
		style, icon = thinkingStyle, "…"
	case "executing":
		style, icon = executingStyle, "▸"
	case "error":
		style, icon = errorStyle, "✗"
	default:
		style, icon = dimStyle, "•"
	}
	fmt.Fprintln(c.out, style.Render(fmt.Sprintf("%s %s", icon, message)))
}

// RenderAnswer renders the model's final markdown answer for the terminal.
// Falls back to the raw text if rendering fails.
func RenderAnswer(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// NoopNotifier discards all status updates.
type NoopNotifier struct{}

// WriteStatus implements Notifier.
func (NoopNotifier) WriteStatus(string, string) {}
