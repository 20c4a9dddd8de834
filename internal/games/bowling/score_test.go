package bowling

import (
	"reflect"
	"testing"
)

// repeat returns n copies of pins.
func repeat(n, pins int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = pins
	}
	return rolls
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		frame    int
		expected int
	}{
		{"empty log", nil, 1, 0},
		{"single roll", []int{7}, 1, 7},
		{"open frame", []int{3, 4}, 2, 7},
		{"pending spare counts pins only", []int{5, 5}, 2, 10},
		{"spare with bonus and partial frame", []int{5, 5, 3}, 2, 16},
		{"pending strike counts pins only", []int{10}, 2, 10},
		{"strike with one follow-up", []int{10, 3}, 2, 13},
		{"strike with both bonus rolls", []int{10, 3, 4}, 3, 24},
		{"tenth-frame strikes at the end of the log", append(repeat(18, 0), 10, 10, 10), 11, 30},
		{"tenth-frame spare bonus", append(repeat(18, 0), 3, 7, 5), 11, 15},
		{"bonus rolls are not scored as a frame", append(repeat(20, 5), 5), 11, 150},
		{"perfect game", repeat(12, 10), 11, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.rolls, tc.frame); got != tc.expected {
				t.Errorf("Score(%v, %d) = %d, want %d", tc.rolls, tc.frame, got, tc.expected)
			}
		})
	}
}

func TestIsStrike(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		index    int
		expected bool
	}{
		{"no bonus rolls yet", []int{10}, 0, false},
		{"one bonus roll", []int{10, 3}, 0, false},
		{"both bonus rolls", []int{10, 3, 4}, 0, true},
		{"not ten pins", []int{3, 4, 5}, 0, false},
		{"last two rolls cannot start a strike bonus", []int{10, 10, 10}, 1, false},
		{"negative index", []int{10, 10, 10}, -1, false},
		{"index past the end", []int{10, 10, 10}, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStrike(tc.rolls, tc.index); got != tc.expected {
				t.Errorf("IsStrike(%v, %d) = %v, want %v", tc.rolls, tc.index, got, tc.expected)
			}
		})
	}
}

func TestIsSpare(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		index    int
		expected bool
	}{
		{"no bonus roll yet", []int{5, 5}, 0, false},
		{"with bonus roll", []int{5, 5, 3}, 0, true},
		{"gutter then ten", []int{0, 10, 3}, 0, true},
		{"open frame", []int{5, 4, 3}, 0, false},
		{"strike is not a spare", []int{10, 0, 5}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSpare(tc.rolls, tc.index); got != tc.expected {
				t.Errorf("IsSpare(%v, %d) = %v, want %v", tc.rolls, tc.index, got, tc.expected)
			}
		})
	}
}

func TestFrameScores(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		frame    int
		expected []FrameScore
	}{
		{
			name:     "pending strike",
			rolls:    []int{10, 3},
			frame:    2,
			expected: []FrameScore{{Frame: 1, Points: 13}},
		},
		{
			name:  "open frame then partial frame",
			rolls: []int{3, 4, 5},
			frame: 2,
			expected: []FrameScore{
				{Frame: 1, Points: 7, Resolved: true},
				{Frame: 2, Points: 5},
			},
		},
		{
			name:  "resolved strike then open frame",
			rolls: []int{10, 3, 4},
			frame: 3,
			expected: []FrameScore{
				{Frame: 1, Points: 17, Resolved: true},
				{Frame: 2, Points: 7, Resolved: true},
			},
		},
		{
			name:     "pending spare",
			rolls:    []int{5, 5},
			frame:    2,
			expected: []FrameScore{{Frame: 1, Points: 10}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FrameScores(tc.rolls, tc.frame)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("FrameScores(%v, %d) = %+v, want %+v", tc.rolls, tc.frame, got, tc.expected)
			}
		})
	}
}

func TestFrameScoresCapsAtTenFrames(t *testing.T) {
	scores := FrameScores(repeat(12, 10), Frames+1)
	if len(scores) != Frames {
		t.Fatalf("got %d frame scores, want %d", len(scores), Frames)
	}
	for _, fs := range scores {
		if fs.Points != 30 || !fs.Resolved {
			t.Errorf("frame %d = %+v, want 30 resolved", fs.Frame, fs)
		}
	}
}
