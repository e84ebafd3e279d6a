package elastictabstops

import "strings"

// SplitCells splits one line of raw text into its cells. An empty line
// has no cells; any other line has one cell per tab plus the trailing
// cell, so a line of one tab yields two empty cells.
func SplitCells(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, "\t")
}

// Expand replaces tabs in a string with space padding according to the
// given tab stops, and returns the resulting string. Padding only
// works out for fixed-width text, so measure should count character
// cells; a nil measure means StringWidth.
func Expand(text string, ts TabStops, measure MeasureFunc) (string, error) {
	if measure == nil {
		measure = StringWidth
	}

	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = text[:len(text)-1]
	}
	rawLines := strings.Split(text, "\n")
	lines := make([][]string, len(rawLines))
	for i, line := range rawLines {
		lines[i] = SplitCells(line)
	}

	sizes, err := TabSizes(lines, ts, measure)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, cells := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range cells {
			b.WriteString(cell)
			if c == len(cells)-1 {
				break
			}
			w, err := measure(cell)
			if err != nil {
				return "", err
			}
			for pad := sizes[i][c] - w; pad > 0; pad-- {
				b.WriteByte(' ')
			}
		}
	}
	if trailingNewline {
		b.WriteByte('\n')
	}
	return b.String(), nil
}
