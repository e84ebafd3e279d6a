package main

import (
	"testing"

	"github.com/nsf/termbox-go"
)

func TestCursorX(t *testing.T) {
	// "it\tis\ta" resolved with the default tab stops
	stops := []int{6, 3}
	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{2, 2},
		{3, 6},
		{5, 8},
		{6, 9},
		{7, 10},
	}

	for _, tt := range tests {
		if got := cursorX("it\tis\ta", tt.col, stops); got != tt.want {
			t.Errorf("cursorX(col=%d) == %d, want %d", tt.col, got, tt.want)
		}
	}

	// Wide runes take two cells
	if got, want := cursorX("日\tx", 1, []int{3}), 2; got != want {
		t.Errorf("cursorX() == %d, want %d", got, want)
	}
}

func TestKeyString(t *testing.T) {
	if got, want := keyString(termbox.Event{Ch: 'a'}), "a"; got != want {
		t.Errorf("keyString() == %#v, want %#v", got, want)
	}
	if got, want := keyString(termbox.Event{Key: termbox.KeyArrowUp}), "<Up>"; got != want {
		t.Errorf("keyString() == %#v, want %#v", got, want)
	}
	if got, want := keyString(termbox.Event{Ch: 'x', Mod: termbox.ModAlt}), "<M-x>"; got != want {
		t.Errorf("keyString() == %#v, want %#v", got, want)
	}
}
