// Package ui is the terminal front end: a chat input with a Send button, a
// transcript of sent messages, a counter panel and a toggleable help footer,
// built on Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whisper/compose/internal/app"
	"github.com/whisper/compose/internal/config"
)

const (
	// Title is the app header.
	Title = "LLM Engineering Week 2 Exercise"
	// Subtitle names the stack under the header.
	Subtitle = "Go + Bubble Tea + Lip Gloss"
	// ChatHeading heads the chat panel.
	ChatHeading = "Chat Interface"
	// Footer closes the page.
	Footer = "Built with Go and the Charm libraries"
)

// focus identifies which control receives key presses.
type focus int

const (
	focusInput focus = iota
	focusSend
	focusCounter
	focusCount // number of focus targets
)

// Model is the root Bubble Tea model.
type Model struct {
	app   *app.App
	chat  *ChatInput
	focus focus
	width int

	increment Button
	decrement Button
	reset     Button
}

// New builds the root model around a.
func New(a *app.App, cfg config.Config) *Model {
	m := &Model{
		app:  a,
		chat: NewChatInput(a.Composer, cfg.CharLimit),
	}
	m.increment = NewButton("+", a.Counter.Increment)
	m.decrement = NewButton("-", a.Counter.Decrement)
	m.reset = NewButton("Reset", a.Counter.Reset)
	m.reset.Variant = Secondary
	return m
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the user quits.
func Run(a *app.App, cfg config.Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(a, cfg), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: run: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "f1":
			m.app.ToggleHelp()
			return m, nil
		case "ctrl+l":
			m.app.Transcript.Clear()
			return m, nil
		}

		switch m.focus {
		case focusSend:
			return m, m.updateSend(msg)
		case focusCounter:
			return m, m.updateCounter(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Leave room for the panel border/padding, prompt and Send button.
		m.chat.SetWidth(msg.Width - 24)
		return m, nil
	}

	if m.focus == focusInput {
		return m, m.chat.Update(msg)
	}
	return m, nil
}

func (m *Model) updateSend(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ":
		m.chat.Click()
	case "?":
		m.app.ToggleHelp()
	}
	return nil
}

func (m *Model) updateCounter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "+", "=":
		m.increment.Press()
	case "-", "_":
		m.decrement.Press()
	case "r", "0":
		m.reset.Press()
	case "?":
		m.app.ToggleHelp()
	}
	return nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.chat.Focus()
	}
	m.chat.Blur()
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(Subtitle))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.chatPanel()))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.counterPanel()))
	b.WriteString("\n")

	b.WriteString(footerStyle.Render(Footer))
	if m.app.Help.Value() {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(helpText))
	}
	return b.String()
}

const helpText = "tab/shift+tab focus • enter send • +/-/r counter • f1 or ? help • ctrl+l clear • esc quit"

func (m *Model) chatPanel() string {
	lines := []string{headingStyle.Render(ChatHeading)}

	msgs := m.app.Transcript.Messages()
	if len(msgs) == 0 {
		lines = append(lines, labelStyle.Render("No messages yet."))
	}
	for _, msg := range msgs {
		lines = append(lines, transcriptStyle.Render("you: "+msg.Text))
	}
	lines = append(lines, "", m.chat.View(m.focus == focusSend))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) counterPanel() string {
	marker := "  "
	if m.focus == focusCounter {
		marker = focusMarker
	}
	count := fmt.Sprintf("%sCount: %d", marker, m.app.Counter.Count())
	focused := m.focus == focusCounter
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.decrement.View(focused), " ",
		m.increment.View(focused), " ",
		m.reset.View(focused),
	)
	return lipgloss.JoinVertical(lipgloss.Left, count, buttons)
}
