package model

// CellView is a read-only window onto a universe's current generation.
// It shares memory with the universe, so it reflects at most one generation:
// after the next mutating call its contents are unspecified.
type CellView struct {
	cells []Cell
	width uint32
}

// Len returns the number of cells in the view
func (v CellView) Len() int {
	return len(v.cells)
}

// At returns the cell at flat index i
func (v CellView) At(i int) Cell {
	return v.cells[i]
}

// Row returns a copy of row r
func (v CellView) Row(r uint32) []Cell {
	start := int(r) * int(v.width)
	row := make([]Cell, v.width)
	copy(row, v.cells[start:start+int(v.width)])
	return row
}

// Bytes returns a copy of the buffer as raw discriminants, one byte per cell
func (v CellView) Bytes() []byte {
	out := make([]byte, len(v.cells))
	for i, c := range v.cells {
		out[i] = byte(c)
	}
	return out
}
