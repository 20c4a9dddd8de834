package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 2, 6, 5)

	if r.Right() != 9 {
		t.Errorf("Right() = %d, expected 9", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"yellow", ColorYellow, true},
		{"Bright_Yellow", ColorBrightYellow, true},
		{"bright-cyan", ColorBrightCyan, true},
		{" gray ", ColorGray, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ParseColor(tc.name)
			if ok != tc.ok {
				t.Fatalf("ParseColor(%q) ok = %v, expected %v", tc.name, ok, tc.ok)
			}
			if ok && c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionSubmit.String() != "Submit" {
		t.Errorf("ActionSubmit.String() = %q", ActionSubmit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}
