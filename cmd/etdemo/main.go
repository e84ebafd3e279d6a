// Command etdemo is a small console text editor that demonstrates
// elastic tabstops: the whole buffer is laid out again after every
// edit, so tab-separated columns realign as you type.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	elastictabstops "github.com/tommie/elastic-tabstops"
)

var (
	// Command-line flags/args
	filename string
	tabStops = elastictabstops.Default

	// Buffer and cursor; col counts runes into lines[row]
	lines    = []string{""}
	row, col int
	topLine  int
	modified bool

	// Status line
	statusFg    termbox.Attribute
	statusMsg   string
	confirmQuit bool
)

// Draw the given string in the given style, starting at the given
// screen coordinates
func drawString(x, y int, s string, fg, bg termbox.Attribute) {
	for _, ch := range s {
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// Draw the given string in the default style, starting at the given
// screen coordinates
func drawStringDefault(x, y int, s string) {
	drawString(x, y, s, termbox.ColorDefault, termbox.ColorDefault)
}

// Set the status message to the given string, with normal attribute
func msgNormal(s string) {
	statusMsg = s
	statusFg = termbox.ColorDefault
}

// Set the status message to the given string, with error attribute
func msgError(s string) {
	statusMsg = s
	statusFg = termbox.ColorRed
}

// Return the screen column of the rune at the given index, using the
// line's resolved tab stops
func cursorX(line string, col int, stops []int) int {
	acc, x, cell := 0, 0, 0
	for i, ch := range []rune(line) {
		if i >= col {
			break
		}
		if ch == '\t' {
			if cell < len(stops) {
				acc += stops[cell]
			}
			cell++
			x = 0
		} else {
			x += runewidth.RuneWidth(ch)
		}
	}
	return acc + x
}

// Draw the entire screen
func draw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	width, height := termbox.Size()

	cells := make([][]string, len(lines))
	for i, line := range lines {
		cells[i] = elastictabstops.SplitCells(line)
	}
	sizes, err := elastictabstops.TabSizes(cells, tabStops, nil)
	if err != nil {
		// Flags are validated at startup, so this should not happen.
		msgError(err.Error())
		sizes = make([][]int, len(lines))
	}

	// Keep the cursor on screen
	if row < topLine {
		topLine = row
	}
	if row >= topLine+height-1 {
		topLine = row - height + 2
	}

	for y := 0; y < height-1 && topLine+y < len(lines); y++ {
		i := topLine + y
		x := 0
		for c, cell := range cells[i] {
			drawStringDefault(x, y, cell)
			if c >= len(sizes[i]) {
				break
			}
			x += sizes[i][c]
		}
	}

	if statusMsg != "" {
		drawString(0, height-1, statusMsg, statusFg, termbox.ColorDefault)
	} else {
		name := filename
		if name == "" {
			name = "[no file]"
		}
		if modified {
			name += " +"
		}
		drawStringDefault(0, height-1, name)
		pos := fmt.Sprintf("%d,%d", row+1, col)
		drawStringDefault(width-len(pos)-1, height-1, pos)
	}

	termbox.SetCursor(cursorX(lines[row], col, sizes[row]), row-topLine)
	if err := termbox.Flush(); err != nil {
		msgError(err.Error())
	} else {
		msgNormal("")
	}
}

// Enter the rune into the buffer at the cursor
func typeRune(ch rune) {
	r := []rune(lines[row])
	lines[row] = string(r[:col]) + string(ch) + string(r[col:])
	col++
	modified = true
}

// Split the current line at the cursor
func typeNewline() {
	r := []rune(lines[row])
	rest := string(r[col:])
	lines[row] = string(r[:col])
	lines = append(lines[:row+1], append([]string{rest}, lines[row+1:]...)...)
	row++
	col = 0
	modified = true
}

// Delete the rune before the cursor, joining lines at a line start
func backspace() {
	if col > 0 {
		r := []rune(lines[row])
		lines[row] = string(r[:col-1]) + string(r[col:])
		col--
		modified = true
	} else if row > 0 {
		col = len([]rune(lines[row-1]))
		lines[row-1] += lines[row]
		lines = append(lines[:row], lines[row+1:]...)
		row--
		modified = true
	}
}

// Delete the rune at the cursor, joining lines at a line end
func del() {
	r := []rune(lines[row])
	if col < len(r) {
		lines[row] = string(r[:col]) + string(r[col+1:])
		modified = true
	} else if row < len(lines)-1 {
		lines[row] += lines[row+1]
		lines = append(lines[:row+1], lines[row+2:]...)
		modified = true
	}
}

// Change the cursor's line by the given delta
func changeLine(d int) {
	row += d
	if row < 0 {
		row = 0
	}
	if row > len(lines)-1 {
		row = len(lines) - 1
	}
	if n := len([]rune(lines[row])); col > n {
		col = n
	}
}

// Move the cursor one rune left, wrapping to the previous line
func moveLeft() {
	if col > 0 {
		col--
	} else if row > 0 {
		row--
		col = len([]rune(lines[row]))
	}
}

// Move the cursor one rune right, wrapping to the next line
func moveRight() {
	if col < len([]rune(lines[row])) {
		col++
	} else if row < len(lines)-1 {
		row++
		col = 0
	}
}

// Attempt to read the file with the given path into the buffer
func openFile(path string) {
	if p, err := os.ReadFile(path); err == nil {
		lines = strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
		row, col, topLine = 0, 0, 0
		modified = false
		msgNormal(fmt.Sprintf("Opened \"%s\".", path))
		filename = path
	} else {
		msgError(err.Error())
	}
}

// Attempt to write the buffer, ensuring a final newline
func saveFile() {
	if filename == "" {
		msgError("No file name.")
		return
	}

	p := []byte(strings.Join(lines, "\n"))
	if len(p) > 0 && p[len(p)-1] != '\n' {
		p = append(p, '\n')
	}

	if err := os.WriteFile(filename, p, 0644); err == nil {
		modified = false
		msgNormal(fmt.Sprintf("Saved \"%s\".", filename))
	} else {
		msgError(err.Error())
	}
}

// Suspend the process (like ^Z in bash)
func suspend() {
	if proc, err := os.FindProcess(os.Getpid()); err == nil {
		// Clean up and send SIGSTOP to this process
		termbox.Close()
		proc.Signal(syscall.SIGSTOP)

		// Hope that 100ms is enough for the process to receive the signal
		time.Sleep(time.Second / 10)

		// Hopefully by now we've got SIGCONT and can re-init things
		termbox.Init()
		termbox.SetInputMode(termbox.InputAlt)
	} else {
		msgError(err.Error())
	}
}

// Take appropriate action for the given key string. Returns true if
// the event loop should stop
func handleKey(s string) bool {
	if s != "<C-q>" {
		confirmQuit = false
	}

	switch s {
	case "":
		// Unmapped key; ignore
	case "<Down>":
		changeLine(1)
	case "<Left>":
		moveLeft()
	case "<Right>":
		moveRight()
	case "<Up>":
		changeLine(-1)
	case "<Backspace>", "<C-h>":
		backspace()
	case "<Delete>":
		del()
	case "<End>":
		col = len([]rune(lines[row]))
	case "<Enter>", "<C-m>":
		typeNewline()
	case "<Home>":
		col = 0
	case "<PgDn>":
		_, height := termbox.Size()
		changeLine(height - 1)
	case "<PgUp>":
		_, height := termbox.Size()
		changeLine(-(height - 1))
	case "<Space>":
		typeRune(' ')
	case "<Tab>", "<C-i>":
		typeRune('\t')
	case "<C-q>":
		if modified && !confirmQuit {
			confirmQuit = true
			msgNormal("Unsaved changes; press C-q again to quit.")
		} else {
			return true
		}
	case "<C-s>":
		saveFile()
	case "<C-z>":
		suspend()
	default:
		if len(s) > 1 {
			msgError("Unbound key: " + s)
		} else {
			// Loop only iterates once
			for _, ch := range s {
				typeRune(ch)
			}
		}
	}
	return false
}

// Event loop
func handleEvents() {
	for {
		switch event := termbox.PollEvent(); event.Type {
		case termbox.EventError:
			msgError(event.Err.Error())
			draw()
		case termbox.EventKey:
			if handleKey(keyString(event)) {
				return
			}
			draw()
		case termbox.EventResize:
			draw()
		}
	}
}

// Initialize command-line flags and args
func initFlags() {
	flag.IntVar(&tabStops.Margin, "margin", tabStops.Margin,
		"extra space between columns")
	flag.IntVar(&tabStops.MinSize, "min", tabStops.MinSize,
		"minimum tab stop size, excluding margin")
	flag.IntVar(&tabStops.StepSize, "step", tabStops.StepSize,
		"align tab stops to multiples of this size")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [<options>] [<file>]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 1 {
		filename = flag.Arg(0)
	} else if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
}

// Entry point
func main() {
	initFlags()

	if _, err := elastictabstops.TabSizes(nil, tabStops, nil); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := termbox.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputAlt)

	if filename != "" {
		openFile(filename)
	} else {
		msgNormal("Elastic tabstops demo. Separate columns with Tab; C-s saves, C-q quits.")
	}
	draw()

	handleEvents()
}
