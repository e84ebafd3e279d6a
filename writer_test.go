package elastictabstops

import (
	"bytes"
	"fmt"
	"testing"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Default, RuneCount)
	fmt.Fprintf(w, "it\tis\ta\n")
	fmt.Fprintf(w, "small\tworld\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() == %v", err)
	}

	if got, want := buf.String(), "it    is a\nsmall world\n"; got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestWriterFlushResets(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Default, RuneCount)
	fmt.Fprintf(w, "xxxx\ty\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() == %v", err)
	}
	fmt.Fprintf(w, "z\tw\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() == %v", err)
	}

	// The chunks are separate block groups: the second flush must not
	// align against the first.
	if got, want := buf.String(), "xxxx y\nz w\n"; got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestWriterInvalidTabStops(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, TabStops{StepSize: -1}, RuneCount)
	fmt.Fprintf(w, "a\tb\n")
	if err := w.Flush(); err == nil {
		t.Error("Flush() == nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("got %#v, want no output on error", buf.String())
	}
}
