package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/rules"
)

const (
	defaultWidth  = 64
	defaultHeight = 64
)

// Universe is a toroidal Game of Life grid. It is not safe for concurrent use;
// callers serialize Tick against reads of Cells.
type Universe struct {
	width      uint32
	height     uint32
	cells      []Cell
	next       []Cell // back buffer, swapped with cells on every tick
	generation int
}

// New creates a universe from an explicit row-major buffer. It panics when
// len(cells) != width*height.
func New(width, height uint32, cells []Cell) *Universe {
	if uint64(len(cells)) != uint64(width)*uint64(height) {
		panic(errors.Errorf("[New] buffer of %d cells does not match a %dx%d grid", len(cells), width, height))
	}
	cur := make([]Cell, len(cells))
	copy(cur, cells)
	return &Universe{
		width:  width,
		height: height,
		cells:  cur,
		next:   make([]Cell, len(cells)),
	}
}

// Default creates the 64x64 universe with the fixed seed pattern: cell i is
// alive iff i%2 == 0 or i%7 == 0.
func Default() *Universe {
	cells := make([]Cell, defaultWidth*defaultHeight)
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = Alive
		}
	}
	return New(defaultWidth, defaultHeight, cells)
}

// Blank creates a universe with every cell dead
func Blank(width, height uint32) *Universe {
	return New(width, height, make([]Cell, int(width)*int(height)))
}

// Width returns the number of columns
func (u *Universe) Width() uint32 {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() uint32 {
	return u.height
}

// Len returns the total cell count
func (u *Universe) Len() int {
	return len(u.cells)
}

// Generation returns the number of ticks since construction or the last resize
func (u *Universe) Generation() int {
	return u.generation
}

// Index maps (row, col) to the flat buffer index. Arguments are not checked.
func (u *Universe) Index(row, col uint32) int {
	return int(row)*int(u.width) + int(col)
}

// Get returns the cell at (row, col)
func (u *Universe) Get(row, col uint32) Cell {
	return u.cells[u.Index(row, col)]
}

// LiveNeighborCount sums the Moore neighborhood of (row, col) with wraparound.
// Deltas of height-1 and width-1 stand in for -1. On grids narrower than
// three cells the same neighbor, or the cell itself, can be counted more
// than once.
func (u *Universe) LiveNeighborCount(row, col uint32) uint8 {
	var (
		count     uint8
		rowDeltas = [3]uint32{u.height - 1, 0, 1}
		colDeltas = [3]uint32{u.width - 1, 0, 1}
	)
	for _, dr := range rowDeltas {
		for _, dc := range colDeltas {
			if dr == 0 && dc == 0 {
				continue
			}
			idx := u.Index((row+dr)%u.height, (col+dc)%u.width)
			count += uint8(u.cells[idx])
		}
	}
	return count
}

// Tick advances the universe by one generation. Every next state is read
// from the pre-tick buffer; the result is written to the back buffer and the
// two are swapped.
func (u *Universe) Tick() {
	for row := range u.height {
		for col := range u.width {
			idx := u.Index(row, col)
			alive := u.cells[idx] == Alive
			if rules.ApplyConwayRules(u.LiveNeighborCount(row, col), alive) {
				u.next[idx] = Alive
			} else {
				u.next[idx] = Dead
			}
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++
}

// SetCells marks every named cell alive and leaves the rest untouched.
// Coordinates must be inside the grid.
func (u *Universe) SetCells(coords ...Coord) {
	for _, c := range coords {
		u.cells[u.Index(c.Row, c.Col)] = Alive
	}
}

// SetWidth replaces the grid with an all-dead width x Height() grid
func (u *Universe) SetWidth(width uint32) {
	u.width = width
	u.reset()
}

// SetHeight replaces the grid with an all-dead Width() x height grid
func (u *Universe) SetHeight(height uint32) {
	u.height = height
	u.reset()
}

func (u *Universe) reset() {
	n := int(u.width) * int(u.height)
	u.cells = make([]Cell, n)
	u.next = make([]Cell, n)
	u.generation = 0
}

// Cells returns a read-only view of the current generation. The view is valid
// until the next call to Tick, SetCells, SetWidth or SetHeight.
func (u *Universe) Cells() CellView {
	return CellView{cells: u.cells, width: u.width}
}

// Population returns the number of live cells
func (u *Universe) Population() (count int) {
	for _, c := range u.cells {
		count += int(c)
	}
	return
}

// String renders one line per row, each terminated by a newline
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(len(u.cells)*len(string(aliveGlyph)) + int(u.height))
	for i, c := range u.cells {
		b.WriteRune(c.Glyph())
		if (i+1)%int(u.width) == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
