package toggle

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		name    string
		initial bool
		flips   int
		want    bool
	}{
		{"zero value is false", false, 0, false},
		{"initial true", true, 0, true},
		{"false to true", false, 1, true},
		{"true to false", true, 1, false},
		{"two flips restore", true, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := New(tt.initial)
			for i := 0; i < tt.flips; i++ {
				tg.Toggle()
			}
			if tg.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", tg.Value(), tt.want)
			}
		})
	}
}

func TestToggle_ZeroValueUsable(t *testing.T) {
	var tg Toggle
	if tg.Value() {
		t.Fatal("expected zero Toggle to be false")
	}
	tg.Toggle()
	if !tg.Value() {
		t.Fatal("expected true after toggle")
	}
}
