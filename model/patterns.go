package model

import "math/rand"

// Wrap folds a signed offset onto the torus
func (u *Universe) Wrap(row, col int) Coord {
	h, w := int(u.height), int(u.width)
	return Coord{
		Row: uint32((row%h + h) % h),
		Col: uint32((col%w + w) % w),
	}
}

// Glider returns a south-east travelling glider with its bounding box at
// (row, col), wrapped onto u
func (u *Universe) Glider(row, col int) []Coord {
	return []Coord{
		u.Wrap(row, col+1),
		u.Wrap(row+1, col+2),
		u.Wrap(row+2, col),
		u.Wrap(row+2, col+1),
		u.Wrap(row+2, col+2),
	}
}

// Blinker returns a horizontal period-2 oscillator starting at (row, col)
func (u *Universe) Blinker(row, col int) []Coord {
	return []Coord{
		u.Wrap(row, col),
		u.Wrap(row, col+1),
		u.Wrap(row, col+2),
	}
}

// RandomCoords picks each cell of u independently with the given density
func (u *Universe) RandomCoords(rng *rand.Rand, density float64) []Coord {
	var coords []Coord
	for row := range u.height {
		for col := range u.width {
			if rng.Float64() < density {
				coords = append(coords, Coord{Row: row, Col: col})
			}
		}
	}
	return coords
}

// PatternCoords resolves a named pattern. ok is false for unknown names.
func (u *Universe) PatternCoords(name string, row, col int) (coords []Coord, ok bool) {
	switch name {
	case PatternGlider:
		return u.Glider(row, col), true
	case PatternBlinker:
		return u.Blinker(row, col), true
	}
	return nil, false
}

const (
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
)
