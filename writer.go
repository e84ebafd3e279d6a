package elastictabstops

import (
	"bytes"
	"io"
)

// A Writer is a filter that inserts space padding around tab-separated
// cells in its input so column blocks line up in the output. Input is
// buffered until Flush, since a cell late in a block can widen the
// whole block.
type Writer struct {
	output  io.Writer
	ts      TabStops
	measure MeasureFunc
	buf     bytes.Buffer
}

// NewWriter returns a Writer filtering into output. A nil measure
// means StringWidth.
func NewWriter(output io.Writer, ts TabStops, measure MeasureFunc) *Writer {
	return &Writer{output: output, ts: ts, measure: measure}
}

// Write buffers p until the next Flush. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Flush lays out the buffered text and writes it to the underlying
// writer. The buffer is reset on success, so text written after a
// Flush aligns independently of text written before it. On error
// nothing is written and the buffer is kept.
func (w *Writer) Flush() error {
	s, err := Expand(w.buf.String(), w.ts, w.measure)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w.output, s); err != nil {
		return err
	}
	w.buf.Reset()
	return nil
}
