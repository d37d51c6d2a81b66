// Package toggle provides a boolean value that can be flipped.
package toggle

// Toggle holds a boolean that flips on every call to Toggle.
type Toggle struct {
	value bool
}

// New creates a Toggle with the given initial value.
func New(initial bool) *Toggle {
	return &Toggle{value: initial}
}

// Value returns the current value.
func (t *Toggle) Value() bool {
	return t.value
}

// Toggle flips the value.
func (t *Toggle) Toggle() {
	t.value = !t.value
}
