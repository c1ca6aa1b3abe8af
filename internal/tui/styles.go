// Package tui provides the terminal user interface for agentchat.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorBorder  = lipgloss.Color("#3b4261")
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorAccent  = lipgloss.Color("#bb9af7")
	colorError   = lipgloss.Color("#f7768e")

	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
)

// Styles
var (
	// Header panel style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Title style for header
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle/endpoint style
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Hint text style
	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				Padding(0, 1)

	// User message bubble
	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Foreground(colorText).
			Padding(0, 1)

	// User label style
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Agent message bubble
	agentBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1)

	// Agent label style
	agentLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Error message bubble (agent messages carrying an error text)
	errorBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorError).
				Foreground(colorError).
				Padding(0, 1)

	// Thinking placeholder row
	thinkingStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Input label style
	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Loading/spinner style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Welcome styles
	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)
	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Align(lipgloss.Center)
	welcomeIconStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				Align(lipgloss.Center)
)

// Gradient colors for the animated loading indicator
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}
