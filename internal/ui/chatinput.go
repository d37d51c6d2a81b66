package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whisper/compose/internal/chat"
)

const (
	// Placeholder is shown in the empty message field.
	Placeholder = "Type your message..."
	// InputLabel names the message field for screen readers and the eye.
	InputLabel = "Message input"
	// SendLabel is the send button's label.
	SendLabel = "Send"
)

// ChatInput binds a text field and a Send button to a Composer. The text
// field mirrors the draft; Enter in the field and a click on the button both
// request a commit.
type ChatInput struct {
	composer *chat.Composer
	input    textinput.Model
	send     Button
}

// NewChatInput creates a ChatInput for composer. charLimit bounds the text
// field; 0 means no limit.
func NewChatInput(composer *chat.Composer, charLimit int) *ChatInput {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorBlue400)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorGray400)
	ti.CharLimit = charLimit
	ti.Width = 40
	ti.SetValue(composer.Draft())
	ti.Focus()

	c := &ChatInput{
		composer: composer,
		input:    ti,
	}
	c.send = NewButton(SendLabel, c.submit)
	return c
}

// Value returns the text currently shown in the field.
func (c *ChatInput) Value() string {
	return c.input.Value()
}

// SetWidth resizes the text field.
func (c *ChatInput) SetWidth(w int) {
	if w > 0 {
		c.input.Width = w
	}
}

// Focus gives the text field keyboard focus.
func (c *ChatInput) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes keyboard focus from the text field.
func (c *ChatInput) Blur() {
	c.input.Blur()
}

// Focused reports whether the text field has focus.
func (c *ChatInput) Focused() bool {
	return c.input.Focused()
}

// Click presses the Send button.
func (c *ChatInput) Click() {
	c.send.Press()
}

// Update handles a message while the text field has focus. Named keys are
// offered to the composer first; only Enter can commit. Typed text and keys
// that do not commit go to the text field and the resulting value becomes
// the draft.
func (c *ChatInput) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type != tea.KeyRunes && c.composer.KeyPress(KeyIdentity(key)) {
			c.input.Reset()
			return nil
		}
		if key.Type == tea.KeyEnter {
			return nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if v := c.input.Value(); v != c.composer.Draft() {
		c.composer.Edit(v)
	}
	return cmd
}

// View renders the label, text field and button on one block.
func (c *ChatInput) View(buttonFocused bool) string {
	field := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(InputLabel),
		c.input.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, field, "  ", c.send.View(buttonFocused))
}

// submit is the Send button's click handler.
func (c *ChatInput) submit() {
	if c.composer.Commit() {
		c.input.Reset()
	}
}

// KeyIdentity maps a terminal key press to the key identity the composer
// understands. The terminal reports the Enter key as "enter". Typed text
// keeps its terminal name and is never sent to the composer as a key.
func KeyIdentity(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyEnter {
		return chat.KeyEnter
	}
	return msg.String()
}
