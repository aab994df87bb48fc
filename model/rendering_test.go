package model

import (
	"bytes"
	"testing"
)

func TestTerminalRenderer(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	u := Blank(2, 1)
	u.SetCells(Coord{0, 1})

	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := r.Display(u.String()); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), clearScreen+"◻◼\n"; got != want {
		t.Fatalf("output = %q, expected %q", got, want)
	}
}
