package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	HeaderColor = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}
	FieldColor  = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#AAAAAA"}
	ValueColor  = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	SubtleColor = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	GoodColor   = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FFF87"}
	WarnColor   = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFD75F"}
	ErrorColor  = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HeaderColor)

	FieldStyle = lipgloss.NewStyle().
			Foreground(FieldColor).
			Width(18)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ValueColor)

	NAStyle = lipgloss.NewStyle().
		Foreground(SubtleColor).
		Faint(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(GoodColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	BlockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HeaderColor).
			Padding(0, 1)

	CompactNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(HeaderColor).
				Width(12)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)

// RenderHeader renders an interface block header.
func RenderHeader(name string) string {
	return HeaderStyle.Render(name)
}

// RenderField renders one "name: value" report row, dimming n/a values.
func RenderField(name, value string, na bool) string {
	if na {
		return FieldStyle.Render(name) + NAStyle.Render(value)
	}
	return FieldStyle.Render(name) + ValueStyle.Render(value)
}

// RenderError renders a fatal error message.
func RenderError(msg string) string {
	return ErrorStyle.Render("error: " + msg)
}

// RenderHelp renders footer help text.
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderBlock wraps a finished interface report in a border.
func RenderBlock(content string) string {
	return BlockStyle.Render(content)
}
