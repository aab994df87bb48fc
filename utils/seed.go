package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-universe/model"
)

// Seed is a starting pattern: grid dimensions and the live cells as
// [row, col] pairs
type Seed struct {
	Width  uint32      `json:"width"`
	Height uint32      `json:"height"`
	Alive  [][2]uint32 `json:"alive"`
}

// LoadSeed reads and validates a seed from a JSON file
func LoadSeed(filename string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(filename)
	if err != nil {
		return seed, errors.Wrapf(err, "[LoadSeed] failed to read file: %+v", filename)
	}

	if seed, err = ParseSeed(data); err != nil {
		return seed, errors.Wrapf(err, "[LoadSeed] bad seed in file: %+v", filename)
	}

	return seed, nil
}

// ParseSeed decodes and validates a JSON seed
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return seed, errors.Wrap(err, "[ParseSeed] failed to unmarshal seed")
	}
	return seed, seed.Validate()
}

// Validate checks that the grid is non-empty and every live cell is on it
func (s Seed) Validate() error {
	if s.Width == 0 || s.Height == 0 {
		return errors.Errorf("seed dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	for _, rc := range s.Alive {
		if rc[0] >= s.Height || rc[1] >= s.Width {
			return errors.Errorf("cell [%d, %d] is outside the %dx%d grid", rc[0], rc[1], s.Width, s.Height)
		}
	}
	return nil
}

// Coords converts the live cells for Universe.SetCells
func (s Seed) Coords() []model.Coord {
	coords := make([]model.Coord, len(s.Alive))
	for i, rc := range s.Alive {
		coords[i] = model.Coord{Row: rc[0], Col: rc[1]}
	}
	return coords
}

// Universe builds a blank universe of the seed's size with the seed painted on
func (s Seed) Universe() *model.Universe {
	u := model.Blank(s.Width, s.Height)
	u.SetCells(s.Coords()...)
	return u
}
