// Package elastictabstops computes column widths for text aligned with
// elastic tabstops, as described at
// http://nickgravgaard.com/elastictabstops/.
//
// Text is treated as lines of tab-separated cells. Cells that are
// vertically adjacent at the same column index form a column block,
// and every cell in a block reserves the width of the block's widest
// member. A line's last cell is not followed by a tab and gets no
// width; a line with no tabs ends every open block.
//
// The package does not measure text itself. Callers supply a
// MeasureFunc, so widths can be terminal cells, pixels or anything
// else. StringWidth is a reasonable default for terminal output.
package elastictabstops

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TabStops configures how cell widths are turned into tab stop sizes.
// The zero value is not usable; see Default.
type TabStops struct {
	// Margin is the amount of extra space between columns.
	Margin int

	// MinSize is the minimum size of a tab stop, excluding margin.
	MinSize int

	// StepSize aligns tab stops to multiples of itself. It must be
	// positive.
	StepSize int

	// MaxColumns, if positive, caps the number of columns that take
	// part in alignment. Cells beyond the cap keep their own size
	// instead of agreeing with neighboring lines.
	MaxColumns int
}

// Default measures text in character cells with one cell between
// columns.
var Default = TabStops{Margin: 1, MinSize: 1, StepSize: 1}

// A MeasureFunc returns the size of a text in the caller's unit of
// measurement. An error fails the whole resolve call.
type MeasureFunc func(text string) (int, error)

// StringWidth measures text in terminal cells, accounting for wide and
// combining runes. It never returns an error.
func StringWidth(text string) (int, error) {
	return runewidth.StringWidth(text), nil
}

// RuneCount measures text as its number of runes.
func RuneCount(text string) (int, error) {
	return utf8.RuneCountInString(text), nil
}

func (ts TabStops) validate() error {
	if ts.StepSize <= 0 {
		return fmt.Errorf("step size must be positive: %d", ts.StepSize)
	}
	if ts.Margin < 0 {
		return fmt.Errorf("margin must not be negative: %d", ts.Margin)
	}
	if ts.MinSize < 0 {
		return fmt.Errorf("minimum size must not be negative: %d", ts.MinSize)
	}
	return nil
}

// TabSize returns the smallest tab stop that fits a text of the given
// size: the size rounded up to a multiple of StepSize, floored at
// MinSize, plus Margin.
func (ts TabStops) TabSize(textSize int) int {
	size := (textSize + ts.StepSize - 1) / ts.StepSize * ts.StepSize
	if size < ts.MinSize {
		size = ts.MinSize
	}
	return ts.Margin + size
}

// TabSizes returns the tab stop sizes for the given lines of cells.
//
// The result has one row per line, with one size per tab-terminated
// cell; the last cell of each line is not tab-terminated and gets no
// entry. Lines with fewer than two cells yield an empty row and end
// every open column block, so blocks separated by a blank line size
// independently. A nil measure means StringWidth.
//
// It fails on a malformed TabStops or if measure fails, in which case
// no sizes are returned.
func TabSizes(lines [][]string, ts TabStops, measure MeasureFunc) ([][]int, error) {
	return TabSizesBetween(lines, ts, measure, nil, nil)
}

// TabSizesBetween is TabSizes for one chunk of a larger document.
//
// start holds the tab sizes of the line just before the chunk and
// seeds the open column blocks; passing the previous chunk's last row
// lets a host process a document one chunk at a time. end holds the
// tab sizes of the line just after the chunk and widens blocks that
// are still open at the end of the chunk without adding rows. A nil
// start or end means a block boundary, so
// TabSizesBetween(lines, ts, measure, nil, nil) is the whole-document
// computation.
func TabSizesBetween(lines [][]string, ts TabStops, measure MeasureFunc, start, end []int) ([][]int, error) {
	if err := ts.validate(); err != nil {
		return nil, err
	}
	if measure == nil {
		measure = StringWidth
	}

	// blocks is an arena of running block maxima. Each cell records
	// the index of its block so rows can be filled in once all maxima
	// are known, without sharing mutable values across rows.
	var blocks []int
	var open []int // per open column, an index into blocks
	for i, size := range start {
		if ts.MaxColumns > 0 && i >= ts.MaxColumns {
			break
		}
		open = append(open, len(blocks))
		blocks = append(blocks, size)
	}

	refs := make([][]int, len(lines))
	for i, line := range lines {
		n := len(line) - 1 // the trailing cell is not tab-terminated
		if n <= 0 {
			// A blank or tabless line ends every open block.
			open = open[:0]
			continue
		}
		refs[i] = make([]int, n)
		for c := 0; c < n; c++ {
			w, err := measure(line[c])
			if err != nil {
				return nil, fmt.Errorf("measure line %d, cell %d: %w", i, c, err)
			}
			size := ts.TabSize(w)
			if ts.MaxColumns > 0 && c >= ts.MaxColumns {
				// Past the column cap, the cell stands alone.
				refs[i][c] = len(blocks)
				blocks = append(blocks, size)
				continue
			}
			if c < len(open) {
				if size > blocks[open[c]] {
					blocks[open[c]] = size
				}
			} else {
				open = append(open, len(blocks))
				blocks = append(blocks, size)
			}
			refs[i][c] = open[c]
		}
		if n < len(open) {
			// Columns this line does not continue are done; a later
			// line at the same index starts a fresh block.
			open = open[:n]
		}
	}

	for c, size := range end {
		if c >= len(open) {
			break
		}
		if size > blocks[open[c]] {
			blocks[open[c]] = size
		}
	}

	sizes := make([][]int, len(lines))
	for i, lineRefs := range refs {
		sizes[i] = make([]int, len(lineRefs))
		for c, ref := range lineRefs {
			sizes[i][c] = blocks[ref]
		}
	}
	return sizes, nil
}
