package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/agentchat/internal/agent"
	apierrors "github.com/diogo/agentchat/internal/errors"
	"github.com/diogo/agentchat/internal/models"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	responseMsg struct {
		result string
	}
	errMsg struct {
		err error
	}
)

// Model represents the TUI state
type Model struct {
	client agent.ClientInterface

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	messages       []models.Message
	loading        bool
	ready          bool
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client agent.ClientInterface) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe a task for the agent..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:   client,
		textarea: ta,
		spinner:  s,
		messages: []models.Message{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "ctrl+y":
			m.copyLastReply()

		case "shift+enter":
			// Newline inside the input, only when the terminal
			// reports the modifier
			if !m.loading {
				m.textarea.InsertString("\n")
			}

		case "enter":
			if cmd, submitted := m.submit(); submitted {
				return m, tea.Batch(
					cmd,
					m.spinner.Tick,
					animationTick(),
				)
			}
			if quit := m.isExitCommand(); quit {
				return m, tea.Quit
			}
			// Rejected submit is a no-op; the key must not reach the
			// textarea and insert a newline.
			return m, nil
		}

	case responseMsg:
		m.loading = false
		text := msg.result
		if text == "" {
			text = models.EmptyResultPlaceholder
		}
		m.appendMessage(models.NewAgentMessage(text))

	case errMsg:
		m.loading = false
		m.appendMessage(models.NewAgentMessage(models.ErrorPrefix + apierrors.UserMessage(msg.err)))

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to the textarea, and never while a request is in
	// flight: the input is disabled until the call settles.
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit validates the current input and, when accepted, appends the
// user message, clears the input, and starts the request. Rejected
// (no-op) while a request is in flight or when the trimmed input is
// empty.
func (m *Model) submit() (tea.Cmd, bool) {
	if m.loading {
		return nil, false
	}

	input := strings.TrimSpace(m.textarea.Value())
	if input == "" || m.isExitCommand() {
		return nil, false
	}

	m.textarea.Reset()
	m.appendMessage(models.NewUserMessage(input))

	m.loading = true
	m.animationFrame = 0
	m.updateViewport()
	m.viewport.GotoBottom()

	return m.sendTask(input), true
}

// isExitCommand reports whether the current input asks to quit
func (m *Model) isExitCommand() bool {
	switch strings.TrimSpace(m.textarea.Value()) {
	case "exit", "quit", "/exit", "/quit":
		return true
	}
	return false
}

// appendMessage adds a message to the list and scrolls to the newest one
func (m *Model) appendMessage(msg models.Message) {
	m.messages = append(m.messages, msg)
	m.updateViewport()
	m.viewport.GotoBottom()
}

// sendTask creates a command that submits the task to the agent
func (m Model) sendTask(task string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.RunTask(context.Background(), task)
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{result: result}
	}
}

// copyLastReply copies the most recent agent message to the clipboard
func (m *Model) copyLastReply() {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Sender == models.SenderAgent {
			_ = clipboard.WriteAll(m.messages[i].Text)
			return
		}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("⚡ Agent Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.Endpoint()),
	)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if len(m.messages) == 0 && !m.loading {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area
	var inputContent string
	if m.loading {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("⚡")
	title := welcomeTitleStyle.Width(width).Render("Welcome to Agent Chat")
	subtitle := welcomeStyle.Width(width).Render("Describe a browser task below and the agent will run it")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	// Center vertically
	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)

		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Agent is thinking ")

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+Y", "Copy reply"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		switch {
		case msg.Sender == models.SenderUser:
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)

		case strings.HasPrefix(msg.Text, models.ErrorPrefix):
			label := agentLabelStyle.Render("⚡ Agent")
			bubble := errorBubbleStyle.Width(bubbleWidth).Render("⚠ " + msg.Text)
			content.WriteString(label + "\n" + bubble)

		default:
			label := agentLabelStyle.Render("⚡ Agent")
			bubble := agentBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	// Transient thinking row while a request is in flight
	if m.loading {
		if len(m.messages) > 0 {
			content.WriteString("\n")
		}
		content.WriteString(agentLabelStyle.Render("⚡ Agent") + "\n")
		content.WriteString(thinkingStyle.Render("  Agent is thinking..."))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client agent.ClientInterface) error {
	m := NewChatModel(client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
