package elastictabstops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCells(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"\t", []string{"", ""}},
		{"a\tb", []string{"a", "b"}},
		{"a\t\tb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitCells(tt.line)); diff != "" {
			t.Errorf("SplitCells(%#v) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"a\tb", "a b"},
		{"a\tbb\tccc\ndddd\te\n", "a    bb ccc\ndddd e\n"},
		{"x\ty\n\nlonger\tz\n", "x y\n\nlonger z\n"},
		{"it\tis\ta\nsmall\tworld", "it    is a\nsmall world"},
	}

	for _, tt := range tests {
		got, err := Expand(tt.text, Default, RuneCount)
		if err != nil {
			t.Errorf("Expand(%#v) == %v", tt.text, err)
		} else if got != tt.want {
			t.Errorf("Expand(%#v) == %#v, want %#v", tt.text, got, tt.want)
		}
	}
}

func TestExpandWideRunes(t *testing.T) {
	got, err := Expand("日本\tx", Default, nil)
	if err != nil {
		t.Fatalf("Expand() == %v", err)
	}
	if want := "日本 x"; got != want {
		t.Errorf("Expand() == %#v, want %#v", got, want)
	}
}

func TestExpandInvalidTabStops(t *testing.T) {
	if _, err := Expand("a\tb", TabStops{StepSize: 0}, RuneCount); err == nil {
		t.Error("Expand() == nil, want error")
	}
}
