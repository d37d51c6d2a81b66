package ui

import "github.com/charmbracelet/lipgloss"

// Variant selects a button's color scheme.
type Variant int

const (
	Primary Variant = iota // default
	Secondary
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Secondary {
		return "secondary"
	}
	return "primary"
}

var buttonBase = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Padding(0, 2)

// VariantStyle returns the resting style for v. Unknown variants render as
// Secondary.
func VariantStyle(v Variant) lipgloss.Style {
	if v == Primary {
		return buttonBase.Background(colorBlue500)
	}
	return buttonBase.Background(colorGray600)
}

// focusedVariantStyle is the highlighted style, the terminal's hover.
func focusedVariantStyle(v Variant) lipgloss.Style {
	if v == Primary {
		return buttonBase.Background(colorBlue600).Underline(true)
	}
	return buttonBase.Background(colorGray700).Underline(true)
}

// Button is a labelled control that calls OnClick when pressed.
type Button struct {
	Label   string
	Variant Variant
	Width   int // rendered width including padding; 0 sizes to the label
	OnClick func()
}

// NewButton creates a Primary button.
func NewButton(label string, onClick func()) Button {
	return Button{Label: label, OnClick: onClick}
}

// Press calls OnClick, if set.
func (b Button) Press() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// View renders the button, highlighted when focused.
func (b Button) View(focused bool) string {
	style := VariantStyle(b.Variant)
	if focused {
		style = focusedVariantStyle(b.Variant)
	}
	if b.Width > 0 {
		style = style.Width(b.Width).Align(lipgloss.Center)
	}
	return style.Render(b.Label)
}
