// Command eltab reads tab-separated text from a file or standard input
// and writes it to standard output with the tabs replaced by space
// padding, aligned using elastic tabstops.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	elastictabstops "github.com/tommie/elastic-tabstops"
)

var (
	margin  = flag.Int("margin", 3, "extra space between columns")
	minSize = flag.Int("min", 1, "minimum tab stop size, excluding margin")
	step    = flag.Int("step", 3, "align tab stops to multiples of this size")
	maxCols = flag.Int("maxcols", 0, "align at most this many columns (0 for no limit)")
)

func run(r io.Reader) error {
	ts := elastictabstops.TabStops{
		Margin:     *margin,
		MinSize:    *minSize,
		StepSize:   *step,
		MaxColumns: *maxCols,
	}

	w := elastictabstops.NewWriter(os.Stdout, ts, nil)
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	return w.Flush()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [<options>] [<file>]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	r := io.Reader(os.Stdin)
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	if err := run(r); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
