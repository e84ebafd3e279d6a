package main

import "github.com/nsf/termbox-go"

var keyMap = map[termbox.Key]string{
	termbox.KeyArrowDown:  "<Down>",
	termbox.KeyArrowLeft:  "<Left>",
	termbox.KeyArrowRight: "<Right>",
	termbox.KeyArrowUp:    "<Up>",
	termbox.KeyBackspace2: "<Backspace>",
	termbox.KeyDelete:     "<Delete>",
	termbox.KeyEnd:        "<End>",
	termbox.KeyHome:       "<Home>",
	termbox.KeyPgdn:       "<PgDn>",
	termbox.KeyPgup:       "<PgUp>",
	termbox.KeySpace:      "<Space>",
	termbox.KeyCtrlH:      "<C-h>",
	termbox.KeyCtrlI:      "<C-i>",
	termbox.KeyCtrlM:      "<C-m>",
	termbox.KeyCtrlQ:      "<C-q>",
	termbox.KeyCtrlS:      "<C-s>",
	termbox.KeyCtrlZ:      "<C-z>",
}

// Converts a key event to a string representation
func keyString(event termbox.Event) string {
	var s string
	if event.Key != 0 {
		s = keyMap[event.Key]
	} else if event.Ch >= 0x20 {
		if event.Mod == termbox.ModAlt {
			s = "<M-" + string(event.Ch) + ">"
		} else {
			s = string(event.Ch)
		}
	}
	return s
}
