package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ListenerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	RouteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	MethodStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	EnabledStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ListenerText styles a listener address.
func ListenerText(text string) string {
	return ListenerStyle.Render(text)
}

// RouteText styles a route path.
func RouteText(text string) string {
	return RouteStyle.Render(text)
}

// MethodText styles an HTTP method.
func MethodText(text string) string {
	return MethodStyle.Render(text)
}

// ValueText styles a setting value.
func ValueText(text string) string {
	return ValueStyle.Render(text)
}

// ToggleText renders "enabled" or "disabled" in green or red.
func ToggleText(on bool) string {
	if on {
		return EnabledStyle.Render("enabled")
	}
	return DisabledStyle.Render("disabled")
}

// KeyValue renders "key: value" with the value highlighted.
func KeyValue(key, value string) string {
	return key + ": " + ValueText(value)
}
