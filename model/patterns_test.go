package model

import (
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	u := Blank(5, 4)
	tests := []struct {
		row, col int
		want     Coord
	}{
		{0, 0, Coord{0, 0}},
		{-1, -1, Coord{3, 4}},
		{4, 5, Coord{0, 0}},
		{9, -7, Coord{1, 3}},
	}
	for _, tt := range tests {
		if got := u.Wrap(tt.row, tt.col); got != tt.want {
			t.Fatalf("Wrap(%d,%d) = %v, expected %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestPatternCoords(t *testing.T) {
	u := Blank(10, 10)
	if coords, ok := u.PatternCoords(PatternGlider, 0, 0); !ok || len(coords) != 5 {
		t.Fatalf("glider: ok=%v len=%d", ok, len(coords))
	}
	if coords, ok := u.PatternCoords(PatternBlinker, 9, 9); !ok || coords[2] != (Coord{9, 1}) {
		t.Fatalf("blinker: ok=%v coords=%v", ok, coords)
	}
	if _, ok := u.PatternCoords("spaceship", 0, 0); ok {
		t.Fatal("unknown pattern resolved")
	}
}

func TestRandomCoords(t *testing.T) {
	u := Blank(20, 20)
	if coords := u.RandomCoords(rand.New(rand.NewSource(1)), 0); len(coords) != 0 {
		t.Fatalf("density 0 picked %d cells", len(coords))
	}
	if coords := u.RandomCoords(rand.New(rand.NewSource(1)), 1); len(coords) != u.Len() {
		t.Fatalf("density 1 picked %d cells, expected %d", len(coords), u.Len())
	}

	a := u.RandomCoords(rand.New(rand.NewSource(7)), 0.3)
	b := u.RandomCoords(rand.New(rand.NewSource(7)), 0.3)
	if len(a) != len(b) {
		t.Fatal("same seed produced different patterns")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different patterns")
		}
	}
}
