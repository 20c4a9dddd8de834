package bowling

import (
	"reflect"
	"testing"
)

func TestMarks(t *testing.T) {
	tests := []struct {
		name     string
		pins     []int
		slots    int
		expected []string
	}{
		{"empty frame", nil, 2, []string{"", ""}},
		{"strike", []int{10}, 2, []string{"X", ""}},
		{"spare", []int{7, 3}, 2, []string{"7", "/"}},
		{"gutter then ten is a spare", []int{0, 10}, 2, []string{"0", "/"}},
		{"open", []int{4, 5}, 2, []string{"4", "5"}},
		{"partial", []int{6}, 2, []string{"6", ""}},
		{"tenth three strikes", []int{10, 10, 10}, 3, []string{"X", "X", "X"}},
		{"tenth strike then spare", []int{10, 3, 7}, 3, []string{"X", "3", "/"}},
		{"tenth spare then strike", []int{3, 7, 10}, 3, []string{"3", "/", "X"}},
		{"tenth open", []int{3, 4}, 3, []string{"3", "4", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Marks(tc.pins, tc.slots)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Marks(%v, %d) = %q, want %q", tc.pins, tc.slots, got, tc.expected)
			}
		})
	}
}

func TestScoreboardRunningTotals(t *testing.T) {
	g := New()
	rollAll(t, g, 10, 7, 3, 9, 0, 10)

	board := g.Scoreboard()
	if len(board) != Frames {
		t.Fatalf("Scoreboard() has %d frames, want %d", len(board), Frames)
	}

	expected := []struct {
		marks  []string
		total  int
		scored bool
	}{
		{[]string{"X", ""}, 20, true},
		{[]string{"7", "/"}, 39, true},
		{[]string{"9", "0"}, 48, true},
		{[]string{"X", ""}, 0, false}, // waiting for bonus rolls
		{[]string{"", ""}, 0, false},
	}

	for i, e := range expected {
		v := board[i]
		if v.Frame != i+1 {
			t.Errorf("frame %d has Frame = %d", i+1, v.Frame)
		}
		if !reflect.DeepEqual(v.Marks, e.marks) {
			t.Errorf("frame %d marks = %q, want %q", i+1, v.Marks, e.marks)
		}
		if v.Scored != e.scored || v.Total != e.total {
			t.Errorf("frame %d total = %d (scored %v), want %d (scored %v)",
				i+1, v.Total, v.Scored, e.total, e.scored)
		}
	}

	if len(board[Frames-1].Marks) != 3 {
		t.Errorf("tenth frame has %d slots, want 3", len(board[Frames-1].Marks))
	}
}

func TestScoreboardFinishedGame(t *testing.T) {
	g := New()
	rollAll(t, g, 1, 4, 4, 5, 6, 4, 5, 5, 10, 0, 1, 7, 3, 6, 4, 10, 2, 8, 6)

	board := g.Scoreboard()
	totals := []int{5, 14, 29, 49, 60, 61, 77, 97, 117, 133}
	for i, want := range totals {
		if !board[i].Scored || board[i].Total != want {
			t.Errorf("frame %d total = %d (scored %v), want %d", i+1, board[i].Total, board[i].Scored, want)
		}
	}

	if got := board[Frames-1].Marks; !reflect.DeepEqual(got, []string{"2", "/", "6"}) {
		t.Errorf("tenth frame marks = %q, want [2 / 6]", got)
	}
}
