package model

import "testing"

func TestHistoryDetectsOscillator(t *testing.T) {
	u := Blank(5, 5)
	u.SetCells(u.Blinker(2, 1)...)

	var h History
	for gen := 0; gen < 3; gen++ {
		if h.Observe(u) {
			t.Fatalf("blinker reported stagnant at generation %d, before the window filled", gen)
		}
		u.Tick()
	}
	if !h.Observe(u) {
		t.Fatal("blinker was not reported as stagnant")
	}
	if h.Len() != historySize {
		t.Fatalf("history length = %d, expected %d", h.Len(), historySize)
	}
}

func TestHistoryDetectsStillLife(t *testing.T) {
	u := Blank(6, 6)
	u.SetCells(Coord{1, 1}, Coord{1, 2}, Coord{2, 1}, Coord{2, 2})

	var h History
	stagnant := false
	for range historySize + 1 {
		stagnant = h.Observe(u)
		u.Tick()
	}
	if !stagnant {
		t.Fatal("block was not reported as stagnant")
	}
}

func TestHistoryIgnoresGlider(t *testing.T) {
	u := Blank(16, 16)
	u.SetCells(u.Glider(0, 0)...)

	var h History
	for gen := 0; gen < 8; gen++ {
		if h.Observe(u) {
			t.Fatalf("glider reported stagnant at generation %d", gen)
		}
		u.Tick()
	}
	if h.Len() != historySize {
		t.Fatalf("history length = %d, expected %d", h.Len(), historySize)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatal("Reset left entries behind")
	}
}

func TestHashChangesWithState(t *testing.T) {
	a := Blank(4, 4)
	b := Blank(4, 4)
	if a.Hash() != b.Hash() {
		t.Fatal("equal universes hash differently")
	}
	b.SetCells(Coord{0, 0})
	if a.Hash() == b.Hash() {
		t.Fatal("different universes hash the same")
	}
}
