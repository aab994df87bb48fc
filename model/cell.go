package model

// Cell is the state of a single grid position. The discriminant values let
// neighbor counts be summed directly.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// Glyph returns the rune used to draw the cell in text output
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

// Coord names a cell by row and column
type Coord struct {
	Row uint32 `json:"row"`
	Col uint32 `json:"col"`
}
